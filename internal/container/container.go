package container

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"docquiz-service/internal/config"
	"docquiz-service/internal/genquiz"
	"docquiz-service/internal/leaderboard"
	"docquiz-service/internal/quizrecord"
)

type Container struct {
	GenQuizContainer     *genquiz.GenQuizContainer
	QuizRecordContainer  *quizrecord.QuizRecordContainer
	LeaderboardContainer *leaderboard.LeaderboardContainer
}

func New(cfg *config.Config) *Container {
	config.Init()

	var recordStore quizrecord.Store
	if cfg.Database.DSN != "" {
		if err := config.Connect(context.Background(), cfg.Database.DSN); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		store, err := quizrecord.NewGormStore(config.DB)
		if err != nil {
			log.Fatalf("failed to init quiz record store: %v", err)
		}
		recordStore = store
	} else {
		recordStore = quizrecord.NewMemoryStore()
	}

	var boardStore leaderboard.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		boardStore = leaderboard.NewRedisStore(client)
	} else {
		boardStore = leaderboard.NewMemoryStore()
	}

	provider, err := genquiz.NewOpenRouterProvider(
		cfg.OpenRouter.APIKey,
		cfg.OpenRouter.Model,
		cfg.OpenRouter.BaseURL,
	)
	if err != nil {
		log.Fatalf("failed to init LLM provider: %v", err)
	}

	quizRecordContainer := quizrecord.NewQuizRecordContainer(recordStore)
	genQuizContainer := genquiz.NewGenQuizContainer(provider, quizRecordContainer.Service)
	leaderboardContainer := leaderboard.NewLeaderboardContainer(boardStore)

	return &Container{
		GenQuizContainer:     genQuizContainer,
		QuizRecordContainer:  quizRecordContainer,
		LeaderboardContainer: leaderboardContainer,
	}
}
