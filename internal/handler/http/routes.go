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

	router.Post("/register", h.register)
	router.Post("/authenticate", h.authenticate)

	router.Get("/health", h.health)
	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/accounts", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.Get("/{id}/image", h.accountImage)
		r.Post("/custom", h.createCustomAccount)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.withAuth)
		r.Get("/{id}/face", h.userFaceLink)
	})

	return router
}
