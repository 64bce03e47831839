package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the whole API under the /api prefix; the prefix is
// required so every route, uploads serving included, stays reachable
// through the same path-based reverse-proxy rule. Only the liveness
// probe lives outside it.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.systemHandler.health())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.systemHandler.root())

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.list())
			r.Post("/", handlers.projectHandler.create())
			r.Post("/sync", handlers.projectHandler.sync())
			r.Get("/{id}", handlers.projectHandler.get())
			r.Put("/{id}", handlers.projectHandler.update())
			r.Delete("/{id}", handlers.projectHandler.delete())
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", handlers.skillHandler.list())
			r.Post("/", handlers.skillHandler.create())
			r.Post("/sync", handlers.skillHandler.sync())
			r.Get("/{id}", handlers.skillHandler.get())
			r.Put("/{id}", handlers.skillHandler.update())
			r.Delete("/{id}", handlers.skillHandler.delete())
		})

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", handlers.contactHandler.listMessages())
			r.Post("/", handlers.contactHandler.createMessage())
			r.Post("/sync", handlers.contactHandler.syncMessages())
		})

		r.Route("/status", func(r chi.Router) {
			r.Get("/", handlers.statusHandler.listChecks())
			r.Post("/", handlers.statusHandler.createCheck())
			r.Post("/sync", handlers.statusHandler.syncChecks())
		})

		r.Get("/quotes", handlers.contentHandler.getQuotes())
		r.Put("/quotes", handlers.contentHandler.updateQuotes())
		r.Get("/quote", handlers.contentHandler.quoteOfDay())
		r.Get("/stats", handlers.contentHandler.getStats())
		r.Put("/stats", handlers.contentHandler.updateStats())

		r.Get("/config", handlers.configHandler.getConfig())
		r.Put("/config", handlers.configHandler.updateConfig())
		r.Post("/admin/auth", handlers.configHandler.adminAuth())
		r.Put("/admin/password", handlers.configHandler.changePassword())

		r.Post("/upload", handlers.mediaHandler.upload())
		r.Get("/uploads/{kind}/{filename}", handlers.mediaHandler.serveUpload())
		r.Get("/media", handlers.mediaHandler.listMedia())
		r.Delete("/media/{kind}/{filename}", handlers.mediaHandler.deleteMedia())

		r.Get("/resume/download", handlers.mediaHandler.downloadResume())
	})
}
