package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/storage"
)

// Totals aggregates every recorded game
type Totals struct {
	Games    int
	Lines    int
	Pieces   int
	Best     uint64
	TopLevel int
}

// Service records finished games for the lifetime of the process
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new HistoryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Record stores the summary of a finished game
func (s *Service) Record(ctx context.Context, summary model.GameSummary) error {
	if err := s.storage.SaveSummary(ctx, summary); err != nil {
		s.logger.Error("failed to save summary",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("record summary: %w", err)
	}

	s.logger.Info("game recorded",
		slog.String("outcome", string(summary.Outcome)),
		slog.Uint64("score", summary.Stats.Score),
		slog.Int("lines", summary.Stats.Lines),
		slog.Int("level", summary.Stats.Level),
		slog.Duration("duration", summary.Duration()),
	)
	return nil
}

// List returns every recorded game, oldest first
func (s *Service) List(ctx context.Context) ([]model.GameSummary, error) {
	return s.storage.ListSummaries(ctx)
}

// Best returns the highest scoring game. Ties go to the game with more
// lines, then to the earlier one.
func (s *Service) Best(ctx context.Context) (model.GameSummary, error) {
	summaries, err := s.storage.ListSummaries(ctx)
	if err != nil {
		return model.GameSummary{}, err
	}
	if len(summaries) == 0 {
		return model.GameSummary{}, model.ErrNoHistory
	}

	best := summaries[0]
	for _, summary := range summaries[1:] {
		if summary.Stats.Score > best.Stats.Score ||
			(summary.Stats.Score == best.Stats.Score && summary.Stats.Lines > best.Stats.Lines) {
			best = summary
		}
	}
	return best, nil
}

// Totals sums lines and pieces over every recorded game
func (s *Service) Totals(ctx context.Context) (Totals, error) {
	summaries, err := s.storage.ListSummaries(ctx)
	if err != nil {
		return Totals{}, err
	}

	var totals Totals
	for _, summary := range summaries {
		totals.Games++
		totals.Lines += summary.Stats.Lines
		totals.Pieces += summary.Stats.TotalPieces
		totals.Best = max(totals.Best, summary.Stats.Score)
		totals.TopLevel = max(totals.TopLevel, summary.Stats.Level)
	}
	return totals, nil
}

// Clear forgets every recorded game
func (s *Service) Clear(ctx context.Context) error {
	return s.storage.ClearSummaries(ctx)
}

// Interface for dependency injection
type ServiceInterface interface {
	Record(ctx context.Context, summary model.GameSummary) error
	List(ctx context.Context) ([]model.GameSummary, error)
	Best(ctx context.Context) (model.GameSummary, error)
	Totals(ctx context.Context) (Totals, error)
	Clear(ctx context.Context) error
}

var _ ServiceInterface = (*Service)(nil)
