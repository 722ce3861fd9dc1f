package quizrecord

import (
	"context"
	"sort"
	"sync"
)

// memoryStore keeps records in process memory. Used in tests and when no
// database is configured.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() Store {
	return &memoryStore{records: map[string]Record{}}
}

func (s *memoryStore) Get(ctx context.Context, name string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *memoryStore) Put(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[rec.Name] = *rec
	return nil
}

func (s *memoryStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*Record, 0, len(s.records))
	for name := range s.records {
		rec := s.records[name]
		records = append(records, &rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].GeneratedAt.After(records[j].GeneratedAt)
	})
	return records, nil
}
