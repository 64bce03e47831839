package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orbya/portfolio-backend/database"
	"github.com/orbya/portfolio-backend/errs"
	"github.com/orbya/portfolio-backend/models"
)

// configHandler owns the site config singleton and the admin password
// checks built on it. The password field never leaves the server in any
// response.
type configHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *database.Document[models.SiteConfig]
}

func newConfigHandler(store *database.Document[models.SiteConfig]) configHandler {
	logger := log.With().Str("handlerName", "configHandler").Logger()

	return configHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

func (h configHandler) load() (models.SiteConfig, error) {
	cfg, present, err := h.store.Load()
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to load site config", err)
	}
	if !present || cfg == nil {
		cfg = models.SiteConfig{}
	}
	return cfg, nil
}

func (h configHandler) getConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := h.load()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, cfg.Sanitized())
	}
}

// updateConfig merges the caller's keys over the stored record. An
// omitted password keeps its stored value; the echo is sanitized either
// way.
func (h configHandler) updateConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update models.SiteConfig
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("site config", err))
			return
		}

		cfg, err := h.load()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		merged := cfg.Merge(update)
		if err := h.store.Save(merged); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to save site config", err))
			return
		}

		h.responder.WriteJSON(w, merged.Sanitized())
	}
}

// adminAuth is the single stateless admin check: plaintext compare of the
// supplied password against the stored one. No session or token comes
// back, only success.
func (h configHandler) adminAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("auth request", err))
			return
		}

		cfg, err := h.load()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if payload.Password != cfg.Password() {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}

func (h configHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("password change request", err))
			return
		}

		if payload.NewPassword == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("newPassword"))
			return
		}

		cfg, err := h.load()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if payload.CurrentPassword != cfg.Password() {
			h.responder.WriteError(w, errs.NewUnauthorizedError("current password is incorrect"))
			return
		}

		cfg[models.ConfigPasswordField] = payload.NewPassword
		if err := h.store.Save(cfg); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to save site config", err))
			return
		}

		h.logger.Info().Msg("admin password changed")
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Password updated successfully",
		})
	}
}
