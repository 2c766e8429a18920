package platform

import (
	"context"

	"github.com/blockfall/stc/internal/model"
)

// Adapter is the platform side of a session: it owns the frame rate,
// reads the player's inputs and draws snapshots. Init failures are
// reported wrapping model.ErrNoVideo, model.ErrNoImages or
// model.ErrNoMemory.
type Adapter interface {
	Init() error
	// WaitFrame blocks until the next frame is due
	WaitFrame(ctx context.Context) error
	// Input returns the set of inputs currently held
	Input() model.Event
	Render(snapshot model.Snapshot)
	End()
}
