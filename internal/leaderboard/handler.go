package leaderboard

import (
	"encoding/json"
	"net/http"

	"docquiz-service/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Submit records a score and re-ranks the leaderboard.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if sub.TotalQuestions < 1 {
		http.Error(w, "total_questions must be at least 1", http.StatusBadRequest)
		return
	}

	if err := h.service.Submit(r.Context(), sub); err != nil {
		log.WithError(err).Error("failed to submit score")
		http.Error(w, "Failed to save score", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Score submitted successfully",
	})
}

// List returns the stored leaderboard in rank order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	entries, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to load leaderboard")
		http.Error(w, "Error retrieving leaderboard", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"leaderboard":   entries,
		"total_entries": len(entries),
	})
}
