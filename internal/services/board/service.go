package board

import (
	"fmt"
	"log/slog"

	"github.com/blockfall/stc/internal/model"
)

// Service provides collision and row-clearing operations on a grid
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// CanPlace returns true if every occupied cell of piece lands on a free
// in-bounds grid cell
func (s *Service) CanPlace(grid *model.Grid, piece model.Piece) bool {
	for _, b := range piece.Blocks() {
		if !grid.IsCellFree(b.X, b.Y) {
			return false
		}
	}
	return true
}

// Commit writes the piece's cells into the grid. A piece that cannot be
// placed is an invariant breach; the grid is left untouched.
func (s *Service) Commit(grid *model.Grid, piece model.Piece) error {
	if !s.CanPlace(grid, piece) {
		s.logger.Error("commit of illegal piece",
			slog.String("shape", piece.Shape.String()),
			slog.Int("x", piece.X),
			slog.Int("y", piece.Y),
			slog.Int("rotation", piece.Rotation),
		)
		return fmt.Errorf("commit %s at (%d,%d): %w", piece.Shape, piece.X, piece.Y, model.ErrAssert)
	}

	for _, b := range piece.Blocks() {
		grid.Set(b.X, b.Y, piece.Tag())
	}
	return nil
}

// ClearFilledRows removes every filled row at once and compacts the rows
// above it downwards, keeping their order. Empty rows are introduced at
// the top. Returns the number of rows removed.
func (s *Service) ClearFilledRows(grid *model.Grid) int {
	cleared := 0
	write := grid.Height() - 1

	for read := grid.Height() - 1; read >= 0; read-- {
		if grid.IsRowFilled(read) {
			cleared++
			continue
		}
		if write != read {
			grid.CopyRow(write, read)
		}
		write--
	}

	for ; write >= 0; write-- {
		grid.ClearRow(write)
	}

	return cleared
}

// DropDistance returns how many rows the piece can fall before it would
// collide. A piece that is already illegal returns 0.
func (s *Service) DropDistance(grid *model.Grid, piece model.Piece) int {
	distance := 0
	for s.CanPlace(grid, piece.Translated(0, distance+1)) {
		distance++
	}
	return distance
}

// Interface for dependency injection
type ServiceInterface interface {
	CanPlace(grid *model.Grid, piece model.Piece) bool
	Commit(grid *model.Grid, piece model.Piece) error
	ClearFilledRows(grid *model.Grid) int
	DropDistance(grid *model.Grid, piece model.Piece) int
}

var _ ServiceInterface = (*Service)(nil)
