package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// record is the sole persisted document: {"count": N}.
type record struct {
	Count int64 `json:"count"`
}

// FileStore persists the count as a single JSON record on disk. One mutex
// covers the full read-modify-write of Increment, so updates are totally
// ordered and applied exactly once.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path. The file is
// created on the first Increment; a missing file reads as zero.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

func (s *FileStore) Increment(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.read() + 1
	data, err := json.Marshal(record{Count: next})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal visitor count: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write visitor count file %s: %w", s.path, err)
	}
	return next, nil
}

// read returns 0 when the file is missing or unparsable; the next Increment
// rewrites a well-formed record, so a corrupt file self-heals.
func (s *FileStore) read() int64 {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0
	}
	return rec.Count
}
