package factory

import (
	"io"
	"log/slog"

	"github.com/blockfall/stc/internal/config"
	"github.com/blockfall/stc/internal/dependencies/clock"
	"github.com/blockfall/stc/internal/dependencies/random"
	"github.com/blockfall/stc/internal/platform"
	"github.com/blockfall/stc/internal/services/board"
	"github.com/blockfall/stc/internal/services/game"
	"github.com/blockfall/stc/internal/services/history"
	"github.com/blockfall/stc/internal/storage"
	"github.com/blockfall/stc/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Engine configuration the session was built with
	Config config.Config

	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	BoardService   *board.Service
	HistoryService *history.Service
	GameController *game.Controller
	Driver         *platform.Driver
}

// Config holds configuration for the application factory
type Config struct {
	// Engine is the game configuration; it is validated here
	Engine config.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes the piece sequence reproducible (optional)
	// If zero, pieces are drawn from crypto/rand
	Seed uint64
	// Clock overrides the system clock (optional), e.g. with a frame
	// clock for headless runs
	Clock clock.Clock
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}

	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create external dependencies
	var clk clock.Clock = clock.New()
	if cfg.Clock != nil {
		clk = cfg.Clock
	}
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(cfg.Engine, memory.New(), clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(engine config.Config, store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	boardService := board.New(logger)
	historyService := history.New(store, logger)
	gameController := game.NewController(engine, boardService, clk, rnd, logger)
	driver := platform.NewDriver(gameController, historyService, logger)

	return &App{
		Config:         engine,
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Logger:         logger,
		BoardService:   boardService,
		HistoryService: historyService,
		GameController: gameController,
		Driver:         driver,
	}
}
