package services

import (
	"hash/fnv"
	"time"

	"github.com/orbya/portfolio-backend/models"
)

// FallbackQuote is served when the quote list is empty or absent.
var FallbackQuote = models.Quote{
	Quote:  "The details are not the details. They make the design.",
	Author: "Charles Eames",
}

// QuoteIndex maps a calendar date and list length to a stable index: the
// same quote all day, a different one the next. Pure function, no shared
// RNG state.
func QuoteIndex(date time.Time, n int) int {
	if n <= 0 {
		return 0
	}

	h := fnv.New32a()
	h.Write([]byte(date.UTC().Format("2006-01-02")))
	return int(h.Sum32() % uint32(n))
}

// QuoteOfDay picks the day's quote from the list, falling back when the
// list is empty.
func QuoteOfDay(quotes []models.Quote, date time.Time) models.Quote {
	if len(quotes) == 0 {
		return FallbackQuote
	}
	return quotes[QuoteIndex(date, len(quotes))]
}
