package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store persists the leaderboard as a whole: submissions are
// read-modify-write over the full entry set, serialized by the service.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

type memoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *memoryStore) Save(ctx context.Context, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)
	return nil
}

const redisKey = "leaderboard"

// redisStore keeps the full leaderboard as one JSON blob, mirroring the
// single-record storage model.
type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Load(ctx context.Context) ([]Entry, error) {
	data, err := s.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *redisStore) Save(ctx context.Context, entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey, data, 0).Err()
}
