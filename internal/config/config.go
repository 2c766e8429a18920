package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/blockfall/stc/internal/model"
)

// Generator kinds
const (
	GeneratorUniform = "uniform"
	GeneratorBag     = "bag"
)

// Config is the immutable engine configuration handed to a session at init
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Levels  LevelConfig   `yaml:"levels"`
	Timing  TimingConfig  `yaml:"timing"`

	// Generator selects how next pieces are drawn: "uniform" or "bag"
	Generator string `yaml:"generator"`
	// ShowPreview and ShowShadow are the flags a new game starts with
	ShowPreview bool `yaml:"show_preview"`
	ShowShadow  bool `yaml:"show_shadow"`
}

// BoardConfig holds the playfield size in cells
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig holds the filled-row table and the drop bonus divisors
type ScoringConfig struct {
	// RowScores[n-1] is awarded for n rows cleared by one lock
	RowScores [model.TetrominoSize]uint64 `yaml:"row_scores,flow"`
	// The player gets RowScores[1] divided by these values for forced moves
	MoveDownDivisor       uint64 `yaml:"move_down_divisor"`
	DropDivisor           uint64 `yaml:"drop_divisor"`
	DropWithShadowDivisor uint64 `yaml:"drop_with_shadow_divisor"`
}

// LevelConfig holds level progression and falling speed
type LevelConfig struct {
	RowsPerLevel     int           `yaml:"rows_per_level"`
	InitialFallDelay time.Duration `yaml:"initial_fall_delay"`
	MinFallDelay     time.Duration `yaml:"min_fall_delay"`
	// Each level up the fall delay is multiplied by DelayFactor and
	// divided by DelayDivisor
	DelayFactor  int64 `yaml:"delay_factor"`
	DelayDivisor int64 `yaml:"delay_divisor"`
}

// TimingConfig holds the delayed autoshift timers
type TimingConfig struct {
	DASDelay    time.Duration `yaml:"das_delay"`
	DASInterval time.Duration `yaml:"das_interval"`

	AutoRotation     bool          `yaml:"auto_rotation"`
	RotationDelay    time.Duration `yaml:"rotation_delay"`
	RotationInterval time.Duration `yaml:"rotation_interval"`
}

// Default returns the standard 10x20 configuration
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			// Original NES values times 10
			RowScores:             [model.TetrominoSize]uint64{400, 1000, 3000, 12000},
			MoveDownDivisor:       1000,
			DropDivisor:           20,
			DropWithShadowDivisor: 100,
		},
		Levels: LevelConfig{
			RowsPerLevel:     5,
			InitialFallDelay: 750 * time.Millisecond,
			MinFallDelay:     25 * time.Millisecond,
			DelayFactor:      5,
			DelayDivisor:     7,
		},
		Timing: TimingConfig{
			DASDelay:         200 * time.Millisecond,
			DASInterval:      50 * time.Millisecond,
			AutoRotation:     false,
			RotationDelay:    375 * time.Millisecond,
			RotationInterval: 200 * time.Millisecond,
		},
		Generator:   GeneratorUniform,
		ShowPreview: true,
		ShowShadow:  true,
	}
}

// Validate checks the configuration for values the engine cannot run with
func (c Config) Validate() error {
	if c.Board.Width < model.TetrominoSize || c.Board.Height < model.TetrominoSize {
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			model.ErrInvalidConfig, model.TetrominoSize, model.TetrominoSize, c.Board.Width, c.Board.Height)
	}
	if c.Scoring.MoveDownDivisor == 0 || c.Scoring.DropDivisor == 0 || c.Scoring.DropWithShadowDivisor == 0 {
		return fmt.Errorf("%w: score divisors must be positive", model.ErrInvalidConfig)
	}
	if c.Levels.RowsPerLevel <= 0 {
		return fmt.Errorf("%w: rows_per_level must be positive", model.ErrInvalidConfig)
	}
	if c.Levels.MinFallDelay <= 0 || c.Levels.InitialFallDelay < c.Levels.MinFallDelay {
		return fmt.Errorf("%w: need 0 < min_fall_delay <= initial_fall_delay", model.ErrInvalidConfig)
	}
	if c.Levels.DelayFactor <= 0 || c.Levels.DelayFactor >= c.Levels.DelayDivisor {
		return fmt.Errorf("%w: need 0 < delay_factor < delay_divisor, got %d/%d",
			model.ErrInvalidConfig, c.Levels.DelayFactor, c.Levels.DelayDivisor)
	}
	if c.Timing.DASDelay < 0 || c.Timing.DASInterval <= 0 {
		return fmt.Errorf("%w: das_interval must be positive", model.ErrInvalidConfig)
	}
	if c.Timing.AutoRotation && (c.Timing.RotationDelay < 0 || c.Timing.RotationInterval <= 0) {
		return fmt.Errorf("%w: rotation_interval must be positive", model.ErrInvalidConfig)
	}
	switch c.Generator {
	case GeneratorUniform, GeneratorBag:
	default:
		return fmt.Errorf("%w: generator must be %q or %q, got %q",
			model.ErrInvalidConfig, GeneratorUniform, GeneratorBag, c.Generator)
	}
	return nil
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Keys missing from the document keep their default value; unknown keys
// are rejected so a misspelled setting cannot silently fall back.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
