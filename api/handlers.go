package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/orbya/portfolio-backend/database"
	"github.com/orbya/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, media *services.MediaStore, staticDir string) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(db.Projects()),
		skillHandler:   newSkillHandler(db.Skills()),
		contactHandler: newContactHandler(db.ContactMessages()),
		statusHandler:  newStatusHandler(db.StatusChecks()),
		contentHandler: newContentHandler(db.Quotes(), db.Stats()),
		configHandler:  newConfigHandler(db.SiteConfig()),
		mediaHandler:   newMediaHandler(media, staticDir),
		systemHandler:  newSystemHandler(),
	}
}

// systemHandler covers the API root banner and the liveness probe.
type systemHandler struct {
	responder Responder
}

func newSystemHandler() systemHandler {
	logger := log.With().Str("handlerName", "systemHandler").Logger()
	return systemHandler{responder: NewResponder(logger)}
}

func (h systemHandler) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"message": "ORBYA Portfolio API - System Online",
		})
	}
}

func (h systemHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{"status": "ok"})
	}
}
