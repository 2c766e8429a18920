package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/blockfall/stc/internal/model"
	"github.com/blockfall/stc/internal/services/history"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func styleCell(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

// PrintHistory writes every recorded game and the session totals
func PrintHistory(ctx context.Context, w io.Writer, hist history.ServiceInterface) error {
	games, err := hist.List(ctx)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(w, "No games played")
		return nil
	}

	totals, err := hist.Totals(ctx)
	if err != nil {
		return err
	}
	best, err := hist.Best(ctx)
	if err != nil && !errors.Is(err, model.ErrNoHistory) {
		return err
	}

	fmt.Fprintln(w, gamesTable(games))
	fmt.Fprintln(w, totalsTable(totals, best))
	return nil
}

func gamesTable(games []model.GameSummary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("#", "OUTCOME", "SCORE", "LINES", "LEVEL", "PIECES", "TIME")

	for i, g := range games {
		t.Row(
			strconv.Itoa(i+1),
			outcome(g.Outcome),
			strconv.FormatUint(g.Stats.Score, 10),
			strconv.Itoa(g.Stats.Lines),
			strconv.Itoa(g.Stats.Level),
			strconv.Itoa(g.Stats.TotalPieces),
			g.Duration().Round(100*time.Millisecond).String(),
		)
	}
	return t.String()
}

func totalsTable(totals history.Totals, best model.GameSummary) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("GAMES", "LINES", "PIECES", "BEST", "BEST LINES", "TOP LEVEL").
		Row(
			strconv.Itoa(totals.Games),
			strconv.Itoa(totals.Lines),
			strconv.Itoa(totals.Pieces),
			strconv.FormatUint(totals.Best, 10),
			strconv.Itoa(best.Stats.Lines),
			strconv.Itoa(totals.TopLevel),
		).
		String()
}

func outcome(state model.GameState) string {
	switch state {
	case model.GameStateGameOver:
		return "game over"
	case model.GameStateQuit:
		return "quit"
	default:
		return string(state)
	}
}
