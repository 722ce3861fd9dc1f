package leaderboard

import (
	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler) {
	r.Post("/leaderboard", h.Submit)
	r.Get("/leaderboard", h.List)
}
