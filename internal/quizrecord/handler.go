package quizrecord

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"docquiz-service/internal/config"
	"docquiz-service/internal/genquiz"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// ListSavedQuizzes returns summaries of every stored quiz, newest first.
func (h *Handler) ListSavedQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	summaries, err := h.service.ListRecords(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list saved quizzes")
		http.Error(w, "Error retrieving saved quizzes", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"saved_quizzes": summaries,
		"total_count":   len(summaries),
	})
}

// GetQuiz returns one stored quiz by name.
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	name := chi.URLParam(r, "name")

	rec, err := h.service.GetRecord(r.Context(), name)
	if err != nil {
		log.WithError(err).Errorf("failed to load quiz %s", name)
		http.Error(w, "Error retrieving quiz", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "Quiz not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, rec)
}

// ExportMarkdown renders a stored quiz as plain-text markdown.
func (h *Handler) ExportMarkdown(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	name := chi.URLParam(r, "name")

	rec, err := h.service.GetRecord(r.Context(), name)
	if err != nil {
		log.WithError(err).Errorf("failed to load quiz %s", name)
		http.Error(w, "Error exporting quiz as markdown", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "Quiz not found", http.StatusNotFound)
		return
	}

	questions := make([]genquiz.Question, len(rec.Questions))
	for i, q := range rec.Questions {
		questions[i] = genquiz.Question{
			Text:    q.Question,
			Options: q.Options,
			Answer:  q.Answer,
			Type:    q.Type,
			Level:   q.Level,
			Topic:   q.Topic,
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(genquiz.RenderMarkdown(questions, rec.GeneratedAt)))
}
