package scoring

import (
	"time"

	"github.com/blockfall/stc/internal/config"
	"github.com/blockfall/stc/internal/model"
)

// Service provides score, level and falling speed arithmetic
type Service struct {
	scoring config.ScoringConfig
	levels  config.LevelConfig
}

// New creates a new ScoringService
func New(scoring config.ScoringConfig, levels config.LevelConfig) *Service {
	return &Service{
		scoring: scoring,
		levels:  levels,
	}
}

// RowsScore returns the table value for rows cleared by a single lock.
// The table is looked up once per lock, never summed per row.
func (s *Service) RowsScore(rows int) uint64 {
	if rows <= 0 || rows > len(s.scoring.RowScores) {
		return 0
	}
	return s.scoring.RowScores[rows-1]
}

// SoftDropBonus returns the points for one player-forced step down
func (s *Service) SoftDropBonus(level int) uint64 {
	return s.scoring.RowScores[1] * uint64(level+1) / s.scoring.MoveDownDivisor
}

// HardDropBonus returns the points for a hard drop. Dropping without the
// landing shadow uses the smaller divisor and pays more.
func (s *Service) HardDropBonus(level int, shadowShown bool) uint64 {
	divisor := s.scoring.DropDivisor
	if shadowShown {
		divisor = s.scoring.DropWithShadowDivisor
	}
	return s.scoring.RowScores[1] * uint64(level+1) / divisor
}

// ApplyLock adds the result of a lock that cleared rows to stats: lines,
// score at the current level, then any level ups. Returns how many
// levels were gained.
func (s *Service) ApplyLock(stats *model.Stats, rows int) int {
	if rows <= 0 {
		return 0
	}

	stats.Lines += rows
	stats.Score += s.RowsScore(rows) * uint64(stats.Level+1)

	gained := 0
	for stats.Lines >= s.levels.RowsPerLevel*(stats.Level+1) {
		stats.Level++
		gained++
	}
	return gained
}

// NextFallDelay returns the delay after one level up: scaled by
// DelayFactor/DelayDivisor and never below MinFallDelay
func (s *Service) NextFallDelay(delay time.Duration) time.Duration {
	next := time.Duration(int64(delay) * s.levels.DelayFactor / s.levels.DelayDivisor)
	return max(next, s.levels.MinFallDelay)
}

// FallDelay returns the delay for a level, starting from InitialFallDelay
func (s *Service) FallDelay(level int) time.Duration {
	delay := s.levels.InitialFallDelay
	for i := 0; i < level && delay > s.levels.MinFallDelay; i++ {
		delay = s.NextFallDelay(delay)
	}
	return delay
}

// Interface for dependency injection
type ServiceInterface interface {
	RowsScore(rows int) uint64
	SoftDropBonus(level int) uint64
	HardDropBonus(level int, shadowShown bool) uint64
	ApplyLock(stats *model.Stats, rows int) int
	NextFallDelay(delay time.Duration) time.Duration
	FallDelay(level int) time.Duration
}

var _ ServiceInterface = (*Service)(nil)
