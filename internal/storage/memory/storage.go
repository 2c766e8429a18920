package memory

import (
	"context"
	"sync"

	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. It
// lives as long as the process.
type Storage struct {
	mu sync.RWMutex

	summaries []model.GameSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSummary(ctx context.Context, summary model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = append(s.summaries, summary)
	return nil
}

func (s *Storage) ListSummaries(ctx context.Context) ([]model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.GameSummary, len(s.summaries))
	copy(result, s.summaries)
	return result, nil
}

func (s *Storage) ClearSummaries(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = nil
	return nil
}
