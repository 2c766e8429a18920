package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/blockfall/stc/internal/config"
	"github.com/blockfall/stc/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	cfg     config.Config
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.cfg = config.Default()
	s.service = New(s.cfg.Scoring, s.cfg.Levels)
}

// RowsScore tests

func (s *ServiceSuite) TestRowsScoreTable() {
	s.Equal(uint64(0), s.service.RowsScore(0))
	s.Equal(uint64(400), s.service.RowsScore(1))
	s.Equal(uint64(1000), s.service.RowsScore(2))
	s.Equal(uint64(3000), s.service.RowsScore(3))
	s.Equal(uint64(12000), s.service.RowsScore(4))
	s.Equal(uint64(0), s.service.RowsScore(5))
}

func (s *ServiceSuite) TestRowsScoreIsNotPerRowSum() {
	for rows := 2; rows <= 4; rows++ {
		s.NotEqual(uint64(rows)*s.service.RowsScore(1), s.service.RowsScore(rows), "rows %d", rows)
	}
}

// ApplyLock tests

func (s *ServiceSuite) TestApplyLockAtLevelZeroUsesTable() {
	expected := map[int]uint64{1: 400, 2: 1000, 3: 3000, 4: 12000}
	for rows, score := range expected {
		stats := model.Stats{}
		s.service.ApplyLock(&stats, rows)
		s.Equal(score, stats.Score, "rows %d", rows)
		s.Equal(rows, stats.Lines)
	}
}

func (s *ServiceSuite) TestApplyLockMultipliesByLevel() {
	stats := model.Stats{Level: 2, Lines: 10}
	s.service.ApplyLock(&stats, 1)
	s.Equal(uint64(1200), stats.Score)
}

func (s *ServiceSuite) TestApplyLockWithoutRowsChangesNothing() {
	stats := model.Stats{Score: 10, Lines: 3, Level: 0}
	s.Equal(0, s.service.ApplyLock(&stats, 0))
	s.Equal(model.Stats{Score: 10, Lines: 3, Level: 0}, stats)
}

func (s *ServiceSuite) TestApplyLockLevelsUpEveryFiveRows() {
	stats := model.Stats{Lines: 4}

	s.Equal(1, s.service.ApplyLock(&stats, 1))
	s.Equal(1, stats.Level)

	s.Equal(0, s.service.ApplyLock(&stats, 4))
	s.Equal(1, stats.Level)

	s.Equal(1, s.service.ApplyLock(&stats, 1))
	s.Equal(2, stats.Level)
	s.Equal(10, stats.Lines)
}

func (s *ServiceSuite) TestApplyLockScoresBeforeLevelUp() {
	stats := model.Stats{Lines: 4}
	s.service.ApplyLock(&stats, 4)
	s.Equal(uint64(12000), stats.Score)
	s.Equal(1, stats.Level)
}

// Drop bonus tests

func (s *ServiceSuite) TestSoftDropBonus() {
	s.Equal(uint64(1), s.service.SoftDropBonus(0))
	s.Equal(uint64(5), s.service.SoftDropBonus(4))
}

func (s *ServiceSuite) TestHardDropPaysLessWithShadow() {
	s.Equal(uint64(50), s.service.HardDropBonus(0, false))
	s.Equal(uint64(10), s.service.HardDropBonus(0, true))
	s.Less(s.service.HardDropBonus(3, true), s.service.HardDropBonus(3, false))
}

// Fall delay tests

func (s *ServiceSuite) TestFallDelayStrictlyDecreasesUntilFloor() {
	delay := s.cfg.Levels.InitialFallDelay
	for level := 0; level < 100; level++ {
		next := s.service.NextFallDelay(delay)
		s.Greater(next, time.Duration(0))
		if delay > s.cfg.Levels.MinFallDelay {
			// The floor may clamp, but never above the previous value
			s.LessOrEqual(next, delay)
			if next > s.cfg.Levels.MinFallDelay {
				s.Less(next, delay)
			}
		} else {
			s.Equal(s.cfg.Levels.MinFallDelay, next)
		}
		delay = next
	}
	s.Equal(s.cfg.Levels.MinFallDelay, delay)
}

func (s *ServiceSuite) TestNextFallDelayDefaultScale() {
	s.Equal(750*time.Millisecond*5/7, s.service.NextFallDelay(750*time.Millisecond))
}

func (s *ServiceSuite) TestFallDelayForLevel() {
	s.Equal(s.cfg.Levels.InitialFallDelay, s.service.FallDelay(0))
	s.Equal(s.service.NextFallDelay(s.cfg.Levels.InitialFallDelay), s.service.FallDelay(1))
	s.Equal(s.cfg.Levels.MinFallDelay, s.service.FallDelay(1000))
}
