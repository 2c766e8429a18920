package model

import "time"

// GameState represents the current phase of a session
type GameState string

const (
	GameStateStartup  GameState = "startup"   // Created, Init not yet called
	GameStatePlaying  GameState = "playing"   // Piece falling, input accepted
	GameStatePaused   GameState = "paused"    // No gravity, movement or locking
	GameStateGameOver GameState = "game_over" // Awaiting restart or quit
	GameStateQuit     GameState = "quit"      // Terminal; no further ticking
)

// Stats is the statistics block of a session
type Stats struct {
	Score       uint64
	Lines       int
	Level       int
	TotalPieces int
	Pieces      [ShapeCount]int // Pieces spawned per shape
}

// Snapshot is a read-only copy of everything a renderer draws
type Snapshot struct {
	State       GameState
	Width       int
	Height      int
	Grid        [][]Cell // Rows[y][x], settled cells only
	Falling     Piece
	Next        Piece
	Stats       Stats
	ShowPreview bool
	ShowShadow  bool
	ShadowGap   int // Rows between the falling piece and its landing row
	ErrorCode   ErrorCode
}

// Shadow returns the falling piece moved to its landing row
func (s Snapshot) Shadow() Piece {
	return s.Falling.Translated(0, s.ShadowGap)
}

// CellAt returns what a renderer should draw at (x, y): the falling
// piece when it covers the cell, otherwise the settled cell
func (s Snapshot) CellAt(x, y int) Cell {
	if s.State != GameStateStartup && s.Falling.Occupies(x, y) {
		return s.Falling.Tag()
	}
	if y < 0 || y >= len(s.Grid) || x < 0 || x >= len(s.Grid[y]) {
		return CellEmpty
	}
	return s.Grid[y][x]
}

// GameSummary is a lightweight record of a finished game
type GameSummary struct {
	Stats     Stats
	StartedAt time.Time
	EndedAt   time.Time
	Outcome   GameState // GameStateGameOver, or GameStateQuit when abandoned
}

// Duration returns how long the game lasted
func (s GameSummary) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}
