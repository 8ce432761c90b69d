package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the HTTP mux for the tournament API.
func NewRouter(h *TournamentHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/leaderboard/export", h.ExportStandings)
		r.Get("/progress", h.GetProgress)

		r.Post("/scores", h.RecordScore)
		r.Get("/players/{playerID}/audit", h.GetPlayerAudit)

		r.Route("/sudden-death/{type}", func(r chi.Router) {
			r.Post("/", h.StartSuddenDeath)
			r.Put("/scores", h.RecordSuddenDeathScore)
			r.Delete("/", h.ResetSuddenDeath)
		})

		r.Post("/courses/assign", h.AssignCourses)
	})

	return r
}
