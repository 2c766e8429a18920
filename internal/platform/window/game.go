// Package window plays a session in a desktop window with ebiten
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/platform"
)

const (
	panelWidth = 160
	margin     = 16
	tps        = 60
)

// Keymap binds keyboard keys to inputs
type Keymap map[ebiten.Key]model.Event

// DefaultKeymap mirrors the terminal bindings
var DefaultKeymap = Keymap{
	ebiten.KeyArrowLeft:  model.EventMoveLeft,
	ebiten.KeyArrowRight: model.EventMoveRight,
	ebiten.KeyArrowDown:  model.EventMoveDown,
	ebiten.KeyArrowUp:    model.EventRotateCW,
	ebiten.KeyX:          model.EventRotateCW,
	ebiten.KeyZ:          model.EventRotateCCW,
	ebiten.KeySpace:      model.EventDrop,
	ebiten.KeyP:          model.EventPause,
	ebiten.KeyR:          model.EventRestart,
	ebiten.KeyN:          model.EventShowNext,
	ebiten.KeyS:          model.EventShowShadow,
	ebiten.KeyQ:          model.EventQuit,
	ebiten.KeyEscape:     model.EventQuit,
}

var (
	background = color.RGBA{24, 24, 28, 255}
	well       = color.RGBA{40, 40, 48, 255}
	palette    = [model.ShapeCount + 1]color.RGBA{
		{},
		{0, 240, 240, 255}, // I
		{240, 240, 0, 255}, // O
		{160, 0, 240, 255}, // T
		{0, 240, 0, 255},   // S
		{240, 0, 0, 255},   // Z
		{0, 0, 240, 255},   // J
		{240, 160, 0, 255}, // L
	}
)

// Game is the ebiten game of a session. Ebiten reports held keys, so the
// driver turns them into key-down and key-up edges and autorepeat works
// as designed.
type Game struct {
	ctx      context.Context
	driver   *platform.Driver
	keymap   Keymap
	cellSize int

	snapshot model.Snapshot
	err      error
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a Game for an initialized driver
func NewGame(ctx context.Context, driver *platform.Driver, keymap Keymap, cellSize int) *Game {
	return &Game{
		ctx:      ctx,
		driver:   driver,
		keymap:   keymap,
		cellSize: cellSize,
		snapshot: driver.Snapshot(),
	}
}

// Input returns the inputs whose keys are held
func (g *Game) Input() model.Event {
	held := model.EventNone
	for key, event := range g.keymap {
		if ebiten.IsKeyPressed(key) {
			held |= event
		}
	}
	return held
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	render, err := g.driver.Step(g.ctx, g.Input())
	if render {
		g.snapshot = g.driver.Snapshot()
	}
	if errors.Is(err, model.ErrPlayerQuits) {
		return ebiten.Termination
	}
	if err != nil {
		g.err = err
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := g.snapshot
	size := float32(g.cellSize)

	vector.DrawFilledRect(screen, margin, margin, size*float32(snap.Width), size*float32(snap.Height), well, false)

	if snap.ShowShadow && snap.ShadowGap > 0 && snap.State == model.GameStatePlaying {
		c := palette[snap.Falling.Tag()]
		c.A = 64
		for _, b := range snap.Shadow().Blocks() {
			g.drawCell(screen, margin, margin, b.X, b.Y, c)
		}
	}

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if cell := snap.CellAt(x, y); cell != model.CellEmpty && int(cell) < len(palette) {
				g.drawCell(screen, margin, margin, x, y, palette[cell])
			}
		}
	}

	g.drawPanel(screen, snap)
}

func (g *Game) drawCell(screen *ebiten.Image, ox, oy float32, x, y int, c color.RGBA) {
	size := float32(g.cellSize)
	vector.DrawFilledRect(screen, ox+float32(x)*size+1, oy+float32(y)*size+1, size-2, size-2, c, false)
}

func (g *Game) drawPanel(screen *ebiten.Image, snap model.Snapshot) {
	left := 2*margin + g.cellSize*snap.Width
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d\nLINES %d\nLEVEL %d",
		snap.Stats.Score, snap.Stats.Lines, snap.Stats.Level), left, margin)

	if snap.ShowPreview {
		ebitenutil.DebugPrintAt(screen, "NEXT", left, margin+64)
		next := snap.Next
		next.X, next.Y = 0, 0
		for _, b := range next.Blocks() {
			g.drawCell(screen, float32(left), float32(margin+84), b.X, b.Y, palette[next.Tag()])
		}
	}

	switch snap.State {
	case model.GameStatePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", left, margin+160)
	case model.GameStateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR restart  Q quit", left, margin+160)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenSize()
}

func (g *Game) screenSize() (int, int) {
	return 3*margin + g.cellSize*g.snapshot.Width + panelWidth,
		2*margin + g.cellSize*g.snapshot.Height
}

// Err returns the error that ended the session, if any
func (g *Game) Err() error {
	return g.err
}

// Run opens a window and plays a session until the player quits or
// closes it
func Run(ctx context.Context, driver *platform.Driver, cellSize int) error {
	if err := driver.Init(nil); err != nil {
		return err
	}
	defer driver.End()

	g := NewGame(ctx, driver, DefaultKeymap, cellSize)
	w, h := g.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("stc")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil {
		if g.err != nil {
			return g.err
		}
		return fmt.Errorf("%w: %v", model.ErrNoVideo, err)
	}
	return nil
}
