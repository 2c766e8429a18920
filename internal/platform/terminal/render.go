package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blockfall/stc/internal/model"
)

const (
	blockGlyph  = "[]"
	emptyGlyph  = " ."
	shadowGlyph = "::"
)

// shapeColors are ANSI colors indexed by cell tag
var shapeColors = [model.ShapeCount + 1]lipgloss.Color{
	"",    // empty
	"14",  // I
	"11",  // O
	"13",  // T
	"10",  // S
	"9",   // Z
	"12",  // J
	"208", // L
}

// Renderer draws snapshots as text
type Renderer struct {
	cells  [model.ShapeCount + 1]lipgloss.Style
	empty  lipgloss.Style
	shadow lipgloss.Style
	board  lipgloss.Style
	panel  lipgloss.Style
	label  lipgloss.Style
	status lipgloss.Style
}

// NewRenderer creates a Renderer with the default palette
func NewRenderer() *Renderer {
	r := &Renderer{
		empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		shadow: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		board:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		panel:  lipgloss.NewStyle().PaddingLeft(2),
		label:  lipgloss.NewStyle().Bold(true),
		status: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
	for tag := 1; tag < len(shapeColors); tag++ {
		r.cells[tag] = lipgloss.NewStyle().Foreground(shapeColors[tag])
	}
	return r
}

// Render returns the board with the statistics panel to its right
func (r *Renderer) Render(snap model.Snapshot) string {
	if snap.Grid == nil {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.board.Render(r.grid(snap)),
		r.panel.Render(r.side(snap)),
	)
}

func (r *Renderer) grid(snap model.Snapshot) string {
	var b strings.Builder
	showShadow := snap.ShowShadow && snap.ShadowGap > 0 && snap.State != model.GameStateGameOver
	shadow := snap.Shadow()

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			cell := snap.CellAt(x, y)
			switch {
			case cell != model.CellEmpty:
				b.WriteString(r.cell(cell))
			case showShadow && shadow.Occupies(x, y):
				b.WriteString(r.shadow.Render(shadowGlyph))
			default:
				b.WriteString(r.empty.Render(emptyGlyph))
			}
		}
		if y+1 != snap.Height {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r *Renderer) cell(c model.Cell) string {
	if int(c) >= len(r.cells) {
		return blockGlyph
	}
	return r.cells[c].Render(blockGlyph)
}

// preview draws the next piece in its own rotation box
func (r *Renderer) preview(p model.Piece) string {
	lines := make([]string, 0, 2)
	for row := 0; row < p.Size; row++ {
		var b strings.Builder
		empty := true
		for col := 0; col < p.Size; col++ {
			if p.Cells[row][col] {
				b.WriteString(r.cell(p.Tag()))
				empty = false
			} else {
				b.WriteString("  ")
			}
		}
		if !empty {
			lines = append(lines, b.String())
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) side(snap model.Snapshot) string {
	sections := []string{
		r.label.Render("SCORE") + fmt.Sprintf("  %d", snap.Stats.Score),
		r.label.Render("LINES") + fmt.Sprintf("  %d", snap.Stats.Lines),
		r.label.Render("LEVEL") + fmt.Sprintf("  %d", snap.Stats.Level),
		"",
	}

	if snap.ShowPreview {
		sections = append(sections, r.label.Render("NEXT"), r.preview(snap.Next), "")
	}

	switch snap.State {
	case model.GameStatePaused:
		sections = append(sections, r.status.Render("PAUSED"), "p: resume")
	case model.GameStateGameOver:
		sections = append(sections, r.status.Render("GAME OVER"), "r: restart  q: quit")
	default:
		sections = append(sections,
			"←/→ move  ↓ soft drop",
			"z/x rotate  space drop",
			"p pause  n next  s shadow",
			"r restart  q quit",
		)
	}

	return strings.Join(sections, "\n")
}
