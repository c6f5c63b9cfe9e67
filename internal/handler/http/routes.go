package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/vault", func(r chi.Router) {
		r.Get("/", h.getVaultStatus)
		r.Post("/unlock", h.unlock)

		// lock needs a live session
		r.With(h.auth).Post("/lock", h.lock)
	})

	router.Route("/api/notes", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.getAllNotes)
		r.Post("/{date}", h.saveNote)
		r.Delete("/{date}/{id}", h.deleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
