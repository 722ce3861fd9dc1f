package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"docquiz-service/internal/config"
	"docquiz-service/internal/genquiz"
	"docquiz-service/internal/leaderboard"
	"docquiz-service/internal/middleware"
	"docquiz-service/internal/quizrecord"
)

type RouterConfig struct {
	GenQuizHandler     *genquiz.Handler
	QuizRecordHandler  *quizrecord.Handler
	LeaderboardHandler *leaderboard.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{
			"message": "Quiz Generator API is running",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"message": "API is operational",
		})
	})

	r.Route("/api", func(api chi.Router) {
		genquiz.Routes(api, cfg.GenQuizHandler)
		quizrecord.Routes(api, cfg.QuizRecordHandler)
		leaderboard.Routes(api, cfg.LeaderboardHandler)
	})

	return r
}
