package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/guttosm/brvmsim/internal/domain/models"
)

type memoryStore struct {
	mu   sync.Mutex
	blob []byte
	rev  string
}

// NewMemoryStore returns a StateStore that lives and dies with the process.
// It keeps the serialized form, not the struct, so Load hands back a state
// as detached from the caller's as the durable backends do.
func NewMemoryStore() StateStore {
	return &memoryStore{}
}

func (s *memoryStore) Load(_ context.Context) (models.PortfolioState, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st models.PortfolioState
	if s.rev == "" {
		return st, "", ErrNotFound
	}
	if err := json.Unmarshal(s.blob, &st); err != nil {
		return st, "", err
	}
	return st, s.rev, nil
}

func (s *memoryStore) Save(_ context.Context, st models.PortfolioState, priorRev string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if priorRev != s.rev {
		return "", ErrConflict
	}
	blob, err := json.Marshal(st)
	if err != nil {
		return "", err
	}
	s.blob = blob
	s.rev = uuid.NewString()
	return s.rev, nil
}

func (s *memoryStore) Ping(_ context.Context) error { return nil }
