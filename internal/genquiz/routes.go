package genquiz

import (
	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler) {
	r.Post("/generate-quiz", h.GenerateQuiz)
	r.Post("/generate-quiz/markdown", h.GenerateQuizMarkdown)
	r.Get("/rate-limit-status", h.RateLimitStatus)
}
