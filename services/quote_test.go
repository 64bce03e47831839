package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbya/portfolio-backend/models"
)

func TestQuoteIndex(t *testing.T) {
	day := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)

	t.Run("stable within a day", func(t *testing.T) {
		morning := time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC)
		evening := time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, QuoteIndex(morning, 7), QuoteIndex(evening, 7))
	})

	t.Run("always in range", func(t *testing.T) {
		for offset := 0; offset < 30; offset++ {
			idx := QuoteIndex(day.AddDate(0, 0, offset), 5)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 5)
		}
	})

	t.Run("varies across days", func(t *testing.T) {
		// With a large modulus a month of dates cannot all hash to
		// the same bucket.
		seen := map[int]bool{}
		for offset := 0; offset < 30; offset++ {
			seen[QuoteIndex(day.AddDate(0, 0, offset), 1000)] = true
		}
		assert.Greater(t, len(seen), 1)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, 0, QuoteIndex(day, 0))
	})
}

func TestQuoteOfDay(t *testing.T) {
	day := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("picks from the list", func(t *testing.T) {
		quotes := []models.Quote{
			{Quote: "one", Author: "a"},
			{Quote: "two", Author: "b"},
			{Quote: "three", Author: "c"},
		}
		got := QuoteOfDay(quotes, day)
		require.Contains(t, quotes, got)
		assert.Equal(t, got, QuoteOfDay(quotes, day))
	})

	t.Run("falls back on empty list", func(t *testing.T) {
		assert.Equal(t, FallbackQuote, QuoteOfDay(nil, day))
	})
}
