package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Post("/api/trial/", h.upsertTrial)
		r.Get("/api/trial/{sessionID}", h.validateTrial)

		r.Get("/api/version/", h.getServerVersion)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/trial/{sessionID}/convert", h.convertTrial)

		r.Post("/api/projects/", h.createProject)
		r.Get("/api/projects/", h.listProjects)
		r.Get("/api/projects/{projectID}", h.getProject)
		r.Patch("/api/projects/{projectID}", h.updateProject)
		r.Delete("/api/projects/{projectID}", h.deleteProject)
	})

	return router
}
