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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/scores/top", h.topScores)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/players/me", h.changeCredentials)
		r.Delete("/api/players/me", h.deleteAccount)

		r.Post("/api/scores", h.recordScore)

		r.Get("/api/progress", h.getProgress)
		r.Put("/api/progress/level", h.setLevel)
		r.Post("/api/progress/achievements", h.addAchievement)
	})

	// administrative routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Post("/api/admin/players/{playerID}/promote", h.promoteAdmin)
		r.Delete("/api/admin/scores/{username}", h.deleteScores)
	})

	return router
}
