package leaderboard

import (
	"context"
	"math"
	"sort"
	"sync"

	"docquiz-service/internal/config"
)

// maxEntries bounds the stored leaderboard; worse entries are evicted.
const maxEntries = 100

type Service interface {
	Submit(ctx context.Context, sub Submission) error
	List(ctx context.Context) ([]Entry, error)
}

type service struct {
	store Store

	// mu serializes the read-modify-write of the full entry set so
	// concurrent submissions cannot lose updates.
	mu sync.Mutex
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) Submit(ctx context.Context, sub Submission) error {
	log := config.WithContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.Load(ctx)
	if err != nil {
		log.WithError(err).Error("failed to load leaderboard")
		return err
	}

	entries = append(entries, Entry{
		PlayerName:     sub.PlayerName,
		Score:          sub.Score,
		TotalQuestions: sub.TotalQuestions,
		Percentage:     percentage(sub.Score, sub.TotalQuestions),
		TimeTaken:      sub.TimeTaken,
		QuizTopic:      sub.QuizTopic,
		CompletionDate: sub.CompletionDate,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].TimeTaken < entries[j].TimeTaken
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	if err := s.store.Save(ctx, entries); err != nil {
		log.WithError(err).Error("failed to save leaderboard")
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// percentage rounds score/total to one decimal place.
func percentage(score, total int) float64 {
	return math.Round(float64(score)/float64(total)*1000) / 10
}
