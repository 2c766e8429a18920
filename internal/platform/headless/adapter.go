// Package headless runs sessions without a display: a virtual clock
// advances one frame per step and a random autoplayer provides input.
package headless

import (
	"context"

	"github.com/blockfall/stc/internal/dependencies/clock"
	"github.com/blockfall/stc/internal/dependencies/random"
	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/platform"
)

// moves is what the autoplayer picks from; the trailing EventNone
// entries make it idle most frames so gravity gets a say
var moves = []model.Event{
	model.EventMoveLeft,
	model.EventMoveRight,
	model.EventRotateCW,
	model.EventRotateCCW,
	model.EventMoveDown,
	model.EventDrop,
	model.EventNone,
	model.EventNone,
	model.EventNone,
	model.EventNone,
}

// Adapter plays a fixed number of frames, then quits
type Adapter struct {
	clock   *clock.FrameClock
	random  random.Random
	frames  int
	restart bool

	frame   int
	held    model.Event
	last    model.Snapshot
	renders int
	games   int
}

var _ platform.Adapter = (*Adapter)(nil)

// New creates an Adapter. When restart is set a finished game is
// followed by a new one until the frames run out.
func New(clk *clock.FrameClock, rnd random.Random, frames int, restart bool) *Adapter {
	return &Adapter{
		clock:   clk,
		random:  rnd,
		frames:  frames,
		restart: restart,
	}
}

func (a *Adapter) Init() error {
	return nil
}

// WaitFrame advances the virtual clock by one frame without sleeping
func (a *Adapter) WaitFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.clock.Step()
	a.frame++
	return nil
}

// Input returns the autoplayer's held inputs for the current frame. An
// input is held for a single frame so that every pick is a fresh press.
func (a *Adapter) Input() model.Event {
	if a.frame >= a.frames {
		a.held = model.EventQuit
		return a.held
	}
	if a.held != model.EventNone {
		a.held = model.EventNone
		return a.held
	}

	switch a.last.State {
	case model.GameStateGameOver:
		if a.restart {
			a.held = model.EventRestart
		}
	case model.GameStatePlaying:
		a.held = moves[a.random.Intn(len(moves))]
	}
	return a.held
}

// Render keeps the snapshot the autoplayer reacts to
func (a *Adapter) Render(snapshot model.Snapshot) {
	if snapshot.State == model.GameStateGameOver && a.last.State != model.GameStateGameOver {
		a.games++
	}
	a.last = snapshot
	a.renders++
}

func (a *Adapter) End() {}

// Last returns the most recent snapshot
func (a *Adapter) Last() model.Snapshot {
	return a.last
}

// Frames returns how many frames have been played
func (a *Adapter) Frames() int {
	return a.frame
}

// Renders returns how many snapshots were drawn
func (a *Adapter) Renders() int {
	return a.renders
}

// GamesOver returns how many games reached game over
func (a *Adapter) GamesOver() int {
	return a.games
}
