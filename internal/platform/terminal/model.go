// Package terminal plays a session in the terminal with bubbletea
package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/platform"
)

// Keymap binds key names, as reported by tea.KeyMsg.String, to inputs
type Keymap map[string]model.Event

// DefaultKeymap binds arrows, vi keys and the classic letters
var DefaultKeymap = Keymap{
	"left":   model.EventMoveLeft,
	"h":      model.EventMoveLeft,
	"right":  model.EventMoveRight,
	"l":      model.EventMoveRight,
	"down":   model.EventMoveDown,
	"j":      model.EventMoveDown,
	"up":     model.EventRotateCW,
	"x":      model.EventRotateCW,
	"k":      model.EventRotateCW,
	"z":      model.EventRotateCCW,
	" ":      model.EventDrop,
	"p":      model.EventPause,
	"r":      model.EventRestart,
	"n":      model.EventShowNext,
	"s":      model.EventShowShadow,
	"q":      model.EventQuit,
	"esc":    model.EventQuit,
	"ctrl+c": model.EventQuit,
}

type frameMsg time.Time

func frame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Model is the bubbletea model of a session. Terminals only report key
// presses, so each key is a tap and holding a key relies on the
// terminal's own key repeat.
type Model struct {
	ctx      context.Context
	driver   *platform.Driver
	renderer *Renderer
	keymap   Keymap
	frame    time.Duration

	view string
	err  error
}

var _ tea.Model = (*Model)(nil)

// NewModel creates a Model for an initialized driver
func NewModel(ctx context.Context, driver *platform.Driver, renderer *Renderer, keymap Keymap, frameDelay time.Duration) *Model {
	m := &Model{
		ctx:      ctx,
		driver:   driver,
		renderer: renderer,
		keymap:   keymap,
		frame:    frameDelay,
	}
	m.view = renderer.Render(driver.Snapshot())
	return m
}

func (m *Model) Init() tea.Cmd {
	return frame(m.frame)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		event, ok := m.keymap[msg.String()]
		if !ok {
			return m, nil
		}
		render, err := m.driver.Tap(m.ctx, event)
		return m, m.after(render, err, nil)

	case frameMsg:
		render, err := m.driver.Step(m.ctx, model.EventNone)
		return m, m.after(render, err, frame(m.frame))
	}
	return m, nil
}

func (m *Model) after(render bool, err error, next tea.Cmd) tea.Cmd {
	if render {
		m.view = m.renderer.Render(m.driver.Snapshot())
	}
	if err != nil {
		if !errors.Is(err, model.ErrPlayerQuits) {
			m.err = err
		}
		return tea.Quit
	}
	return next
}

func (m *Model) View() string {
	return m.view
}

// Err returns the error that ended the session, if it was not the
// player quitting
func (m *Model) Err() error {
	return m.err
}

// Run plays a session in the terminal until the player quits
func Run(ctx context.Context, driver *platform.Driver, frameDelay time.Duration, opts ...tea.ProgramOption) error {
	if err := driver.Init(nil); err != nil {
		return err
	}
	defer driver.End()

	m := NewModel(ctx, driver, NewRenderer(), DefaultKeymap, frameDelay)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", model.ErrNoVideo, err)
	}
	return m.Err()
}
