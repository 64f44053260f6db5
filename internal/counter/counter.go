// Package counter persists the visitor hit counter behind a small Store
// interface so the backing storage (file, Postgres, memory) is an injected
// dependency rather than process-wide state.
package counter

import (
	"context"
	"sync"
)

// Store is the visitor counter contract. Implementations serialize
// Increment as a single read-modify-write so concurrent callers never lose
// an update, and Get never observes a half-written record.
type Store interface {
	Get(ctx context.Context) (int64, error)
	Increment(ctx context.Context) (int64, error)
}

// MemoryStore keeps the count in process memory. Used by tests and
// ephemeral deployments where persistence across restarts does not matter.
type MemoryStore struct {
	mu    sync.Mutex
	count int64
}

// NewMemoryStore creates an empty in-memory counter.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, nil
}

func (s *MemoryStore) Increment(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return s.count, nil
}
