package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orbya/portfolio-backend/database"
	"github.com/orbya/portfolio-backend/errs"
	"github.com/orbya/portfolio-backend/models"
)

type statusHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *database.Store[string, models.StatusCheck]
	validate  *validator.Validate
}

func newStatusHandler(store *database.Store[string, models.StatusCheck]) statusHandler {
	logger := log.With().Str("handlerName", "statusHandler").Logger()

	return statusHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		validate:  newValidator(),
	}
}

func (h statusHandler) createCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var check models.StatusCheck
		if err := json.NewDecoder(r.Body).Decode(&check); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode status request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("status check", err))
			return
		}

		if apiErr := validationError(h.validate, check); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		check.ID = uuid.New().String()
		check.Timestamp = time.Now().UTC()

		if err := h.store.Insert(r.Context(), check); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, check)
	}
}

func (h statusHandler) listChecks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, err := h.store.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, checks)
	}
}

func (h statusHandler) syncChecks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.store.Sync(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"message": "Synced status checks to database",
			"count":   count,
		})
	}
}
