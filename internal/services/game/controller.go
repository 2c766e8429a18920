package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/blockfall/stc/internal/config"
	"github.com/blockfall/stc/internal/dependencies/clock"
	"github.com/blockfall/stc/internal/dependencies/random"
	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/services/board"
	"github.com/blockfall/stc/internal/services/generator"
	"github.com/blockfall/stc/internal/services/scoring"
	"github.com/blockfall/stc/internal/services/timing"
)

// Controller is the game state machine of one session. It owns the grid,
// the falling and next pieces and the statistics. A single driver calls
// OnKeyDown/OnKeyUp as inputs change and Update once per frame; nothing
// here blocks or is safe for concurrent use.
type Controller struct {
	cfg          config.Config
	boardService board.ServiceInterface
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger

	// Built by Init from cfg
	scoringService scoring.ServiceInterface
	timers         timing.ServiceInterface
	generator      generator.Generator

	grid        *model.Grid
	falling     model.Piece
	next        model.Piece
	stats       model.Stats
	state       model.GameState
	showPreview bool
	showShadow  bool
	shadowGap   int

	pending   model.Event // key-down edges since the last Update
	changed   bool
	errorCode model.ErrorCode
	err       error // fatal; every later Update returns it

	startedAt time.Time
	endedAt   time.Time
}

// NewController creates a Controller in the startup state. Init must be
// called before the first Update.
func NewController(
	cfg config.Config,
	boardService board.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		cfg:          cfg,
		boardService: boardService,
		clock:        clock,
		random:       random,
		logger:       logger,
		state:        model.GameStateStartup,
	}
}

// Init validates the configuration, allocates the grid and starts the
// first game. A failed Init leaves the controller refusing to run.
func (c *Controller) Init() error {
	if c.err != nil {
		return c.err
	}
	if c.grid != nil {
		return nil
	}

	if err := c.cfg.Validate(); err != nil {
		return c.fail(fmt.Errorf("init: %w", err))
	}
	gen, err := generator.New(c.cfg.Generator, c.random)
	if err != nil {
		return c.fail(fmt.Errorf("init: %w", err))
	}

	c.generator = gen
	c.scoringService = scoring.New(c.cfg.Scoring, c.cfg.Levels)
	c.timers = timing.New(c.cfg.Timing, c.cfg.Levels.InitialFallDelay)
	c.grid = model.NewGrid(c.cfg.Board.Width, c.cfg.Board.Height)
	c.errorCode = model.ErrorNone

	c.logger.Info("session initialized",
		slog.Int("width", c.cfg.Board.Width),
		slog.Int("height", c.cfg.Board.Height),
		slog.String("generator", c.cfg.Generator),
	)

	c.startGame(c.clock.Now())
	return nil
}

// Abort marks the session as failed before it ran, typically because the
// platform could not initialize. Every later Init or Update returns err.
func (c *Controller) Abort(err error) {
	if err == nil || c.err != nil {
		return
	}
	c.fail(err)
}

// OnKeyDown registers the press of one or more inputs. The press is
// acted upon by the next Update; movement inputs also start their
// autorepeat timers.
func (c *Controller) OnKeyDown(events model.Event) {
	if c.timers == nil {
		return
	}
	c.pending |= events
	c.timers.Press(events, c.clock.Now())
}

// OnKeyUp registers the release of one or more inputs
func (c *Controller) OnKeyUp(events model.Event) {
	if c.timers == nil {
		return
	}
	c.timers.Release(events)
}

// Update advances the session by one tick at the clock's current time.
// It returns model.ErrPlayerQuits once the player quit and an error
// wrapping model.ErrAssert after an invariant breach; both are final.
func (c *Controller) Update() error {
	if c.err != nil {
		return c.err
	}
	if c.grid == nil {
		return model.ErrNotInitialized
	}

	now := c.clock.Now()
	events := c.pending
	c.pending = model.EventNone

	if events.Has(model.EventQuit) {
		c.quit(now)
		return c.err
	}

	if events.Has(model.EventRestart) {
		c.logger.Info("game restarted", slog.Uint64("score", c.stats.Score))
		c.startGame(now)
		return nil
	}

	if events.Has(model.EventPause) {
		c.togglePause(now)
	}
	if events.Has(model.EventShowNext) {
		c.showPreview = !c.showPreview
		c.changed = true
	}
	if events.Has(model.EventShowShadow) {
		c.showShadow = !c.showShadow
		c.changed = true
	}

	if c.state != model.GameStatePlaying {
		return nil
	}

	events |= c.timers.Repeats(now)

	if err := c.play(events, now); err != nil {
		return err
	}

	if c.changed && c.state == model.GameStatePlaying {
		c.shadowGap = c.boardService.DropDistance(c.grid, c.falling)
	}
	return nil
}

// play applies one tick of gameplay to the falling piece
func (c *Controller) play(events model.Event, now time.Time) error {
	switch {
	case events.Has(model.EventMoveRight):
		c.tryMove(c.falling.Translated(1, 0))
	case events.Has(model.EventMoveLeft):
		c.tryMove(c.falling.Translated(-1, 0))
	}

	if events.Has(model.EventRotateCW) {
		c.tryMove(c.falling.Rotated(model.Clockwise))
	}
	if events.Has(model.EventRotateCCW) {
		c.tryMove(c.falling.Rotated(model.CounterClockwise))
	}

	if events.Has(model.EventDrop) {
		distance := c.boardService.DropDistance(c.grid, c.falling)
		c.falling = c.falling.Translated(0, distance)
		c.stats.Score += c.scoringService.HardDropBonus(c.stats.Level, c.showShadow)
		c.changed = true
		return c.lock(now)
	}

	if events.Has(model.EventMoveDown) {
		if c.tryMove(c.falling.Translated(0, 1)) {
			c.stats.Score += c.scoringService.SoftDropBonus(c.stats.Level)
		} else {
			return c.lock(now)
		}
	}

	if c.timers.GravityDue(now) && !c.tryMove(c.falling.Translated(0, 1)) {
		return c.lock(now)
	}
	return nil
}

// tryMove replaces the falling piece with candidate if it can be placed
func (c *Controller) tryMove(candidate model.Piece) bool {
	if !c.boardService.CanPlace(c.grid, candidate) {
		return false
	}
	c.falling = candidate
	c.changed = true
	return true
}

// lock commits the falling piece, clears rows, scores and spawns the next
// piece
func (c *Controller) lock(now time.Time) error {
	if err := c.boardService.Commit(c.grid, c.falling); err != nil {
		return c.fail(err)
	}

	rows := c.boardService.ClearFilledRows(c.grid)
	if gained := c.scoringService.ApplyLock(&c.stats, rows); gained > 0 {
		delay := c.scoringService.FallDelay(c.stats.Level)
		c.timers.SetFallDelay(delay)
		c.logger.Info("level up",
			slog.Int("level", c.stats.Level),
			slog.Int("lines", c.stats.Lines),
			slog.Duration("fall_delay", delay),
		)
	}
	if rows > 0 {
		c.logger.Debug("rows cleared",
			slog.Int("rows", rows),
			slog.Uint64("score", c.stats.Score),
		)
	}

	c.changed = true
	c.spawn(now)
	return nil
}

// spawn promotes the next piece to the falling piece and draws a new
// next piece. The game is over when the spawned piece does not fit.
func (c *Controller) spawn(now time.Time) {
	c.falling = model.SpawnPiece(c.next.Shape, c.grid.Width())
	c.next = model.SpawnPiece(c.generator.Next(), c.grid.Width())
	c.timers.ResetGravity(now)
	c.changed = true

	if !c.boardService.CanPlace(c.grid, c.falling) {
		c.state = model.GameStateGameOver
		c.endedAt = now
		c.shadowGap = 0
		c.logger.Info("game over",
			slog.Uint64("score", c.stats.Score),
			slog.Int("lines", c.stats.Lines),
			slog.Int("level", c.stats.Level),
			slog.Int("pieces", c.stats.TotalPieces),
		)
		return
	}

	c.stats.TotalPieces++
	c.stats.Pieces[c.falling.Shape]++
}

// startGame resets grid, statistics, flags and timers, then spawns
func (c *Controller) startGame(now time.Time) {
	c.grid.Reset()
	c.generator.Reset()
	c.timers.Reset(now, c.cfg.Levels.InitialFallDelay)

	c.stats = model.Stats{}
	c.showPreview = c.cfg.ShowPreview
	c.showShadow = c.cfg.ShowShadow
	c.pending = model.EventNone
	c.state = model.GameStatePlaying
	c.startedAt = now
	c.endedAt = time.Time{}

	c.next = model.SpawnPiece(c.generator.Next(), c.grid.Width())
	c.spawn(now)
	if c.state == model.GameStatePlaying {
		c.shadowGap = c.boardService.DropDistance(c.grid, c.falling)
	}
}

func (c *Controller) togglePause(now time.Time) {
	switch c.state {
	case model.GameStatePlaying:
		c.state = model.GameStatePaused
		c.timers.Pause(now)
	case model.GameStatePaused:
		c.state = model.GameStatePlaying
		c.timers.Resume(now)
	default:
		return
	}
	c.changed = true
	c.logger.Debug("pause toggled", slog.String("state", string(c.state)))
}

func (c *Controller) quit(now time.Time) {
	if c.state == model.GameStatePlaying || c.state == model.GameStatePaused {
		c.endedAt = now
	}
	c.state = model.GameStateQuit
	c.errorCode = model.ErrorPlayerQuits
	c.err = model.ErrPlayerQuits
	c.changed = true
	c.logger.Info("player quit", slog.Uint64("score", c.stats.Score))
}

// fail records a fatal error and returns it
func (c *Controller) fail(err error) error {
	c.err = err
	c.errorCode = model.CodeOf(err)
	c.changed = true
	c.logger.Error("session failed",
		slog.String("code", c.errorCode.String()),
		slog.String("error", err.Error()),
	)
	return err
}

// Snapshot returns a copy of everything a renderer needs
func (c *Controller) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		State:       c.state,
		Width:       c.cfg.Board.Width,
		Height:      c.cfg.Board.Height,
		Falling:     c.falling,
		Next:        c.next,
		Stats:       c.stats,
		ShowPreview: c.showPreview,
		ShowShadow:  c.showShadow,
		ShadowGap:   c.shadowGap,
		ErrorCode:   c.errorCode,
	}
	if c.grid != nil {
		snap.Grid = c.grid.Rows()
	}
	return snap
}

// ConsumeChanged returns true if anything visible changed since the last
// call, and clears the flag
func (c *Controller) ConsumeChanged() bool {
	changed := c.changed
	c.changed = false
	return changed
}

// Summary returns the record of the current or last game
func (c *Controller) Summary() model.GameSummary {
	ended := c.endedAt
	if ended.IsZero() {
		ended = c.clock.Now()
	}
	return model.GameSummary{
		Stats:     c.stats,
		StartedAt: c.startedAt,
		EndedAt:   ended,
		Outcome:   c.state,
	}
}

// State returns the current game state
func (c *Controller) State() model.GameState {
	return c.state
}

// ErrorCode returns the code of the error that ended the session, or
// ErrorNone
func (c *Controller) ErrorCode() model.ErrorCode {
	return c.errorCode
}

// End releases the session. The controller returns to the startup state
// and needs a new Init; a recorded error code is kept.
func (c *Controller) End() {
	c.grid = nil
	c.timers = nil
	c.generator = nil
	c.scoringService = nil
	c.pending = model.EventNone
	if c.err == model.ErrPlayerQuits {
		c.err = nil
	}
	c.state = model.GameStateStartup
	c.logger.Debug("session ended", slog.String("code", c.errorCode.String()))
}

// Interface for dependency injection
type ControllerInterface interface {
	Init() error
	Abort(err error)
	OnKeyDown(events model.Event)
	OnKeyUp(events model.Event)
	Update() error
	Snapshot() model.Snapshot
	ConsumeChanged() bool
	Summary() model.GameSummary
	State() model.GameState
	ErrorCode() model.ErrorCode
	End()
}

var _ ControllerInterface = (*Controller)(nil)
