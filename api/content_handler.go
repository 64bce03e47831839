package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orbya/portfolio-backend/database"
	"github.com/orbya/portfolio-backend/errs"
	"github.com/orbya/portfolio-backend/models"
	"github.com/orbya/portfolio-backend/services"
)

// contentHandler serves the wholesale-replace singletons: the quote list
// and the stats strip. Both live in files only, the database is never
// involved (see database.Document).
type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	quotes    *database.Document[[]models.Quote]
	stats     *database.Document[[]models.Stat]
}

func newContentHandler(quotes *database.Document[[]models.Quote], stats *database.Document[[]models.Stat]) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		quotes:    quotes,
		stats:     stats,
	}
}

func (h contentHandler) getQuotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quotes, _, err := h.quotes.Load()
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to load quotes", err))
			return
		}
		if quotes == nil {
			quotes = []models.Quote{}
		}
		h.responder.WriteJSON(w, quotes)
	}
}

func (h contentHandler) updateQuotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var quotes []models.Quote
		if err := json.NewDecoder(r.Body).Decode(&quotes); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("quotes", err))
			return
		}

		if err := h.quotes.Save(quotes); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to save quotes", err))
			return
		}
		h.responder.WriteJSON(w, quotes)
	}
}

// quoteOfDay returns the list entry picked deterministically from the
// current UTC calendar date, or the fallback quote when none are stored.
func (h contentHandler) quoteOfDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quotes, _, err := h.quotes.Load()
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to load quotes", err))
			return
		}
		h.responder.WriteJSON(w, services.QuoteOfDay(quotes, time.Now().UTC()))
	}
}

func (h contentHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, _, err := h.stats.Load()
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to load stats", err))
			return
		}
		if stats == nil {
			stats = []models.Stat{}
		}
		h.responder.WriteJSON(w, stats)
	}
}

func (h contentHandler) updateStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats []models.Stat
		if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("stats", err))
			return
		}

		if err := h.stats.Save(stats); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to save stats", err))
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}
