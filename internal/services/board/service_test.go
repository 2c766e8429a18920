package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	grid    *model.Grid
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
	s.grid = model.NewGrid(10, 20)
}

// fillRow fills row y completely except for the columns in holes
func (s *ServiceSuite) fillRow(y int, holes ...int) {
	for x := 0; x < s.grid.Width(); x++ {
		s.grid.Set(x, y, model.ShapeI.Tag())
	}
	for _, x := range holes {
		s.grid.Set(x, y, model.CellEmpty)
	}
}

// bottom converts a row index counted from the floor into a grid y
func (s *ServiceSuite) bottom(r int) int {
	return s.grid.Height() - 1 - r
}

// CanPlace tests

func (s *ServiceSuite) TestCanPlaceOnEmptyGrid() {
	for _, shape := range model.AllShapes() {
		s.True(s.service.CanPlace(s.grid, model.SpawnPiece(shape, 10)), "shape %s", shape)
	}
}

func (s *ServiceSuite) TestCanPlaceRejectsWalls() {
	p := model.NewPiece(model.ShapeO)

	s.False(s.service.CanPlace(s.grid, p.Translated(-1, 0)))
	s.False(s.service.CanPlace(s.grid, p.Translated(9, 0)))
	s.True(s.service.CanPlace(s.grid, p.Translated(8, 0)))
}

func (s *ServiceSuite) TestCanPlaceRejectsFloorAndCeiling() {
	p := model.NewPiece(model.ShapeO)

	s.True(s.service.CanPlace(s.grid, p.Translated(0, 18)))
	s.False(s.service.CanPlace(s.grid, p.Translated(0, 19)))
	s.False(s.service.CanPlace(s.grid, p.Translated(0, -1)))
}

func (s *ServiceSuite) TestCanPlaceIgnoresEmptyMatrixCells() {
	// The I piece's top row is empty, so it may sit with its matrix
	// hanging one row above the grid.
	p := model.NewPiece(model.ShapeI).Translated(0, -1)
	s.True(s.service.CanPlace(s.grid, p))
}

func (s *ServiceSuite) TestCanPlaceRejectsSettledCells() {
	s.grid.Set(5, 1, model.ShapeZ.Tag())
	p := model.NewPiece(model.ShapeT).Translated(4, 0)

	s.False(s.service.CanPlace(s.grid, p))
	s.True(s.service.CanPlace(s.grid, p.Translated(0, 2)))
}

func (s *ServiceSuite) TestCanPlaceMatchesReferenceForAllShapesAndRotations() {
	rng := rand.New(rand.NewPCG(1, 2))
	grid := model.NewGrid(6, 8)

	for round := 0; round < 20; round++ {
		grid.Reset()
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				if rng.IntN(4) == 0 {
					grid.Set(x, y, model.Cell(1+rng.IntN(model.ShapeCount)))
				}
			}
		}

		for _, shape := range model.AllShapes() {
			piece := model.NewPiece(shape)
			for rot := 0; rot < 4; rot++ {
				for y := -4; y <= grid.Height(); y++ {
					for x := -4; x <= grid.Width(); x++ {
						candidate := piece.Translated(x, y)

						blocked := false
						for _, b := range candidate.Blocks() {
							outside := b.X < 0 || b.X >= grid.Width() || b.Y < 0 || b.Y >= grid.Height()
							if outside || grid.Get(b.X, b.Y) != model.CellEmpty {
								blocked = true
							}
						}

						s.Equal(!blocked, s.service.CanPlace(grid, candidate),
							"shape %s rotation %d at (%d,%d)", shape, rot, x, y)
					}
				}
				piece = piece.Rotated(model.Clockwise)
			}
		}
	}
}

// Commit tests

func (s *ServiceSuite) TestCommitWritesTag() {
	p := model.NewPiece(model.ShapeL).Translated(2, 3)

	s.Require().NoError(s.service.Commit(s.grid, p))

	for _, b := range p.Blocks() {
		s.Equal(model.ShapeL.Tag(), s.grid.Get(b.X, b.Y))
	}
	s.Equal(4, s.grid.FilledCount())
}

func (s *ServiceSuite) TestCommitIllegalPieceIsAssert() {
	s.grid.Set(1, 1, model.ShapeO.Tag())
	p := model.NewPiece(model.ShapeO)

	err := s.service.Commit(s.grid, p)
	s.ErrorIs(err, model.ErrAssert)
	s.Equal(1, s.grid.FilledCount())
}

// ClearFilledRows tests

func (s *ServiceSuite) TestClearNoFilledRowsIsIdempotent() {
	s.fillRow(s.bottom(0), 3)
	s.grid.Set(4, s.bottom(1), model.ShapeT.Tag())
	before := s.grid.Rows()

	s.Equal(0, s.service.ClearFilledRows(s.grid))
	s.Equal(before, s.grid.Rows())

	s.Equal(0, s.service.ClearFilledRows(s.grid))
	s.Equal(before, s.grid.Rows())
}

func (s *ServiceSuite) TestClearSingleBottomRow() {
	s.fillRow(s.bottom(0))
	s.grid.Set(2, s.bottom(1), model.ShapeS.Tag())

	s.Equal(1, s.service.ClearFilledRows(s.grid))

	s.Equal(model.ShapeS.Tag(), s.grid.Get(2, s.bottom(0)))
	s.Equal(1, s.grid.FilledCount())
}

func (s *ServiceSuite) TestClearNonAdjacentRowsShiftsByRowsRemovedBeneath() {
	// Rows 2 and 5 (from the floor) are full; markers elsewhere
	s.fillRow(s.bottom(2))
	s.fillRow(s.bottom(5))
	s.grid.Set(0, s.bottom(0), 1)
	s.grid.Set(1, s.bottom(1), 2)
	s.grid.Set(2, s.bottom(3), 3)
	s.grid.Set(3, s.bottom(4), 4)
	s.grid.Set(4, s.bottom(6), 5)
	s.grid.Set(5, s.bottom(10), 6)
	s.grid.Set(6, s.bottom(19), 7)

	s.Equal(2, s.service.ClearFilledRows(s.grid))

	// Below both cleared rows: unchanged
	s.Equal(model.Cell(1), s.grid.Get(0, s.bottom(0)))
	s.Equal(model.Cell(2), s.grid.Get(1, s.bottom(1)))
	// Between the cleared rows: down by one
	s.Equal(model.Cell(3), s.grid.Get(2, s.bottom(2)))
	s.Equal(model.Cell(4), s.grid.Get(3, s.bottom(3)))
	// Above both: down by two
	s.Equal(model.Cell(5), s.grid.Get(4, s.bottom(4)))
	s.Equal(model.Cell(6), s.grid.Get(5, s.bottom(8)))
	s.Equal(model.Cell(7), s.grid.Get(6, s.bottom(17)))

	// Two new empty rows on top
	for x := 0; x < s.grid.Width(); x++ {
		s.Equal(model.CellEmpty, s.grid.Get(x, 0))
		s.Equal(model.CellEmpty, s.grid.Get(x, 1))
	}
	s.Equal(7, s.grid.FilledCount())
}

func (s *ServiceSuite) TestClearFourRows() {
	for r := 0; r < 4; r++ {
		s.fillRow(s.bottom(r))
	}
	s.fillRow(s.bottom(4), 0)

	s.Equal(4, s.service.ClearFilledRows(s.grid))

	s.Equal(9, s.grid.FilledCount())
	s.Equal(model.CellEmpty, s.grid.Get(0, s.bottom(0)))
	s.Equal(model.ShapeI.Tag(), s.grid.Get(1, s.bottom(0)))
}

// DropDistance tests

func (s *ServiceSuite) TestDropDistanceOnEmptyGrid() {
	p := model.SpawnPiece(model.ShapeO, 10)
	s.Equal(18, s.service.DropDistance(s.grid, p))

	i := model.SpawnPiece(model.ShapeI, 10)
	s.Equal(18, s.service.DropDistance(s.grid, i))
}

func (s *ServiceSuite) TestDropDistanceStopsOnStack() {
	s.fillRow(s.bottom(0), 0)
	p := model.SpawnPiece(model.ShapeO, 10)

	s.Equal(17, s.service.DropDistance(s.grid, p))
}

func (s *ServiceSuite) TestDropDistanceOfIllegalPieceIsZero() {
	p := model.NewPiece(model.ShapeO).Translated(-5, 0)
	s.Equal(0, s.service.DropDistance(s.grid, p))
}
