package quizrecord

import (
	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler) {
	r.Get("/saved-quizzes", h.ListSavedQuizzes)
	r.Get("/quiz/{name}", h.GetQuiz)
	r.Get("/quiz/{name}/markdown", h.ExportMarkdown)
}
