package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orbya/portfolio-backend/database"
	"github.com/orbya/portfolio-backend/errs"
)

// resourceHandler is the CRUD facade shared by every integer-id entity
// kind. Per-entity behavior (required fields, derived fields like
// thumbnails) comes in through the two hooks instead of duplicated
// handler sets.
type resourceHandler[T any] struct {
	responder Responder
	logger    zerolog.Logger
	store     *database.Store[int, T]
	entity    string

	// validate rejects a decoded payload with a client error, nil accepts.
	validate func(*T) *errs.ApiErr
	// normalize stamps the record with its id and any derived fields
	// before it is written. The id always wins over whatever the body
	// carried.
	normalize func(*T, int)
}

func newResourceHandler[T any](
	entity string,
	store *database.Store[int, T],
	validate func(*T) *errs.ApiErr,
	normalize func(*T, int),
) resourceHandler[T] {
	logger := log.With().Str("handlerName", entity+"Handler").Logger()

	return resourceHandler[T]{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		entity:    entity,
		validate:  validate,
		normalize: normalize,
	}
}

func (h resourceHandler[T]) pathID(r *http.Request) (int, *errs.ApiErr) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + h.entity + " id")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + h.entity + " id")
	}
	return id, nil
}

func (h resourceHandler[T]) decode(r *http.Request) (T, *errs.ApiErr) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode request body")
		return payload, errs.NewMalformedPayloadError(h.entity, err)
	}
	if h.validate != nil {
		if apiErr := h.validate(&payload); apiErr != nil {
			return payload, apiErr
		}
	}
	return payload, nil
}

func (h resourceHandler[T]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.store.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, records)
	}
}

func (h resourceHandler[T]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := h.pathID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		record, found, err := h.store.Get(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !found {
			h.responder.WriteError(w, errs.NewNotFound(h.entity))
			return
		}

		h.responder.WriteJSON(w, record)
	}
}

func (h resourceHandler[T]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, apiErr := h.decode(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		id, err := database.NextID(r.Context(), h.store)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.normalize != nil {
			h.normalize(&payload, id)
		}

		if err := h.store.Insert(r.Context(), payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, payload)
	}
}

func (h resourceHandler[T]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := h.pathID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		payload, apiErr := h.decode(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		// The path id is authoritative, any id in the body is discarded.
		if h.normalize != nil {
			h.normalize(&payload, id)
		}

		existed, err := h.store.Replace(r.Context(), id, payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !existed {
			h.responder.WriteError(w, errs.NewNotFound(h.entity))
			return
		}

		h.responder.WriteJSON(w, payload)
	}
}

func (h resourceHandler[T]) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := h.pathID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existed, err := h.store.Delete(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !existed {
			h.responder.WriteError(w, errs.NewNotFound(h.entity))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"message": h.entity + " deleted successfully",
			"id":      id,
		})
	}
}

func (h resourceHandler[T]) sync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.store.Sync(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"message": fmt.Sprintf("Synced %d %s to database", count, h.store.Name()),
		})
	}
}
