package storage

import (
	"context"

	"github.com/blockfall/stc/internal/model"
)

// Storage defines the interface for keeping finished game summaries
type Storage interface {
	// SaveSummary appends a finished game
	SaveSummary(ctx context.Context, summary model.GameSummary) error
	// ListSummaries returns every saved game in the order it was saved
	ListSummaries(ctx context.Context) ([]model.GameSummary, error)
	// ClearSummaries forgets every saved game
	ClearSummaries(ctx context.Context) error
}
