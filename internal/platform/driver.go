package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/services/game"
	"github.com/blockfall/stc/internal/services/history"
)

// Driver feeds a game controller from an adapter's input and records
// every finished game in the history
type Driver struct {
	controller game.ControllerInterface
	history    history.ServiceInterface
	logger     *slog.Logger

	held  model.Event
	state model.GameState
}

// NewDriver creates a Driver for controller
func NewDriver(controller game.ControllerInterface, history history.ServiceInterface, logger *slog.Logger) *Driver {
	return &Driver{
		controller: controller,
		history:    history,
		logger:     logger,
		state:      model.GameStateStartup,
	}
}

// Init starts the session. A platform failure is handed to the
// controller, which then refuses to run.
func (d *Driver) Init(platformErr error) error {
	if platformErr != nil {
		d.logger.Error("platform init failed",
			slog.String("code", model.CodeOf(platformErr).String()),
			slog.String("error", platformErr.Error()),
		)
		d.controller.Abort(platformErr)
		return platformErr
	}
	if err := d.controller.Init(); err != nil {
		return err
	}
	d.state = d.controller.State()
	return nil
}

// Step converts the held inputs into key-down and key-up edges, advances
// the controller by one tick and reports whether a re-render is due.
func (d *Driver) Step(ctx context.Context, held model.Event) (bool, error) {
	if released := d.held &^ held; released != model.EventNone {
		d.controller.OnKeyUp(released)
	}
	if pressed := held &^ d.held; pressed != model.EventNone {
		d.controller.OnKeyDown(pressed)
	}
	d.held = held

	return d.update(ctx)
}

// Tap presses and releases events at once. Terminals report key presses
// but not releases, so every key is a tap there.
func (d *Driver) Tap(ctx context.Context, events model.Event) (bool, error) {
	d.controller.OnKeyDown(events)
	d.controller.OnKeyUp(events)
	return d.update(ctx)
}

func (d *Driver) update(ctx context.Context) (bool, error) {
	err := d.recoverUpdate()

	state := d.controller.State()
	if finished(d.state, state) {
		if recErr := d.history.Record(ctx, d.controller.Summary()); recErr != nil {
			d.logger.Warn("summary not recorded", slog.String("error", recErr.Error()))
		}
	}
	d.state = state

	return d.controller.ConsumeChanged(), err
}

// recoverUpdate runs one controller update. A panic fails the session
// with ErrAssert instead of tearing down the platform.
func (d *Driver) recoverUpdate() (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("%w: panic: %v", model.ErrAssert, r)
			d.controller.Abort(err)
		}
	}()

	return d.controller.Update()
}

// finished is true when a running game just ended
func finished(before, after model.GameState) bool {
	running := before == model.GameStatePlaying || before == model.GameStatePaused
	ended := after == model.GameStateGameOver || after == model.GameStateQuit
	return running && ended
}

// Snapshot returns the controller's snapshot
func (d *Driver) Snapshot() model.Snapshot {
	return d.controller.Snapshot()
}

// End releases the session
func (d *Driver) End() {
	d.controller.End()
	d.held = model.EventNone
	d.state = model.GameStateStartup
}

// Run drives adapter until the player quits, the context is cancelled or
// the session fails. Quitting is not an error.
func Run(ctx context.Context, adapter Adapter, driver *Driver) error {
	if err := driver.Init(adapter.Init()); err != nil {
		return err
	}
	defer adapter.End()
	defer driver.End()

	adapter.Render(driver.Snapshot())
	for {
		if err := adapter.WaitFrame(ctx); err != nil {
			return err
		}

		render, err := driver.Step(ctx, adapter.Input())
		if render {
			adapter.Render(driver.Snapshot())
		}
		if errors.Is(err, model.ErrPlayerQuits) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
