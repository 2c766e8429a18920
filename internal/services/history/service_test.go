package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/storage/memory"
	"github.com/blockfall/stc/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) game(score uint64, lines, level, pieces int) model.GameSummary {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return model.GameSummary{
		Stats:     model.Stats{Score: score, Lines: lines, Level: level, TotalPieces: pieces},
		StartedAt: start,
		EndedAt:   start.Add(2 * time.Minute),
		Outcome:   model.GameStateGameOver,
	}
}

// Record tests

func (s *ServiceSuite) TestRecordAndList() {
	s.Require().NoError(s.service.Record(s.ctx, s.game(100, 1, 0, 10)))
	s.Require().NoError(s.service.Record(s.ctx, s.game(200, 2, 0, 12)))

	summaries, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(uint64(100), summaries[0].Stats.Score)
}

func (s *ServiceSuite) TestRecordLogsOutcome() {
	logger, buf := testutil.CaptureLogger()
	service := New(s.storage, logger)

	s.Require().NoError(service.Record(s.ctx, s.game(4200, 7, 1, 30)))

	s.Contains(buf.String(), `"msg":"game recorded"`)
	s.Contains(buf.String(), `"score":4200`)
	s.Contains(buf.String(), `"outcome":"game_over"`)
}

type failingStorage struct {
	memory.Storage
}

var errStorageDown = errors.New("storage down")

func (f *failingStorage) SaveSummary(context.Context, model.GameSummary) error {
	return errStorageDown
}

func (s *ServiceSuite) TestRecordWrapsStorageError() {
	service := New(&failingStorage{}, testutil.NopLogger())

	err := service.Record(s.ctx, s.game(1, 0, 0, 1))
	s.ErrorIs(err, errStorageDown)
}

// Best tests

func (s *ServiceSuite) TestBestWithoutGames() {
	_, err := s.service.Best(s.ctx)
	s.ErrorIs(err, model.ErrNoHistory)
}

func (s *ServiceSuite) TestBestPicksHighestScore() {
	s.Require().NoError(s.service.Record(s.ctx, s.game(100, 1, 0, 10)))
	s.Require().NoError(s.service.Record(s.ctx, s.game(900, 5, 1, 40)))
	s.Require().NoError(s.service.Record(s.ctx, s.game(300, 2, 0, 20)))

	best, err := s.service.Best(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(900), best.Stats.Score)
}

func (s *ServiceSuite) TestBestTieGoesToMoreLines() {
	s.Require().NoError(s.service.Record(s.ctx, s.game(500, 1, 0, 10)))
	s.Require().NoError(s.service.Record(s.ctx, s.game(500, 3, 0, 10)))
	s.Require().NoError(s.service.Record(s.ctx, s.game(500, 3, 0, 99)))

	best, err := s.service.Best(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, best.Stats.Lines)
	s.Equal(10, best.Stats.TotalPieces)
}

// Totals tests

func (s *ServiceSuite) TestTotals() {
	s.Require().NoError(s.service.Record(s.ctx, s.game(100, 1, 0, 10)))
	s.Require().NoError(s.service.Record(s.ctx, s.game(900, 6, 1, 40)))

	totals, err := s.service.Totals(s.ctx)
	s.Require().NoError(err)
	s.Equal(Totals{Games: 2, Lines: 7, Pieces: 50, Best: 900, TopLevel: 1}, totals)
}

func (s *ServiceSuite) TestClear() {
	s.Require().NoError(s.service.Record(s.ctx, s.game(100, 1, 0, 10)))
	s.Require().NoError(s.service.Clear(s.ctx))

	_, err := s.service.Best(s.ctx)
	s.ErrorIs(err, model.ErrNoHistory)
}
