package quizrecord

import (
	"context"
	"fmt"
	"time"

	"docquiz-service/internal/config"
	"docquiz-service/internal/genquiz"
)

type Service interface {
	// SaveGenerated persists a generated batch. An empty name defaults to
	// one record per calendar day, overwriting the day's prior quiz.
	SaveGenerated(ctx context.Context, questions []genquiz.Question, name string) error
	GetRecord(ctx context.Context, name string) (*Record, error)
	ListRecords(ctx context.Context) ([]Summary, error)
}

type service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) SaveGenerated(ctx context.Context, questions []genquiz.Question, name string) error {
	log := config.WithContext(ctx)

	now := s.now()
	if name == "" {
		name = fmt.Sprintf("quiz_%02d_%02d", now.Month(), now.Day())
	}

	stored := make([]StoredQuestion, len(questions))
	for i, q := range questions {
		stored[i] = StoredQuestion{
			Question: q.Text,
			Options:  q.Options,
			Answer:   q.Answer,
			Type:     q.Type,
			Level:    q.Level,
			Topic:    q.Topic,
		}
	}

	rec := &Record{
		Name:           name,
		GeneratedAt:    now,
		TotalQuestions: len(stored),
		Questions:      stored,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return err
	}

	log.Infof("quiz saved as record %s", name)
	return nil
}

func (s *service) GetRecord(ctx context.Context, name string) (*Record, error) {
	return s.store.Get(ctx, name)
}

func (s *service) ListRecords(ctx context.Context) ([]Summary, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, Summary{
			Name:           rec.Name,
			GeneratedAt:    rec.GeneratedAt,
			TotalQuestions: rec.TotalQuestions,
			Topics:         distinctTopics(rec.Questions),
		})
	}
	return summaries, nil
}

func distinctTopics(questions []StoredQuestion) []string {
	seen := map[string]bool{}
	topics := []string{}
	for _, q := range questions {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	return topics
}
