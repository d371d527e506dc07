package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/user/register", h.register)
		r.Post("/user/login", h.login)
		r.Get("/version", h.version)
	})

	// routes behind token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/news", h.listNews)
		r.Post("/news", h.createNews)
		r.Get("/news/{newsID}", h.getNews)
		r.Put("/news/{newsID}", h.updateNews)
		r.Delete("/news/{newsID}", h.deleteNews)

		r.Get("/user", h.listUsers)
		r.Get("/user/{userID}", h.getUser)
		r.Put("/user/{userID}", h.updateUser)
		r.Delete("/user/{userID}", h.deleteUser)
	})

	return router
}
