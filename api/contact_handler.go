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

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *database.Store[string, models.ContactMessage]
	validate  *validator.Validate
}

func newContactHandler(store *database.Store[string, models.ContactMessage]) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		validate:  newValidator(),
	}
}

// createMessage appends a contact form submission. The id and timestamp
// are always assigned here; whatever the body carried is overwritten.
func (h contactHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact message", err))
			return
		}

		if apiErr := validationError(h.validate, message); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		message.ID = uuid.New().String()
		message.Timestamp = time.Now().UTC()

		if err := h.store.Insert(r.Context(), message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.store.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, messages)
	}
}

func (h contactHandler) syncMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.store.Sync(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"message": "Synced contact messages to database",
			"count":   count,
		})
	}
}
