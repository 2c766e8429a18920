package model

// Direction is a rotation sense
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Piece is a falling or preview tetromino. Pieces are values: every
// transform returns a candidate and leaves the receiver untouched.
type Piece struct {
	Shape    Shape
	Cells    [TetrominoSize][TetrominoSize]bool // [row][col]
	Size     int                                // Rotation box side
	X        int                                // Grid column of the matrix's left edge
	Y        int                                // Grid row of the matrix's top edge
	Rotation int                                // Quarter turns clockwise from spawn, 0..3
}

// NewPiece creates a piece in its canonical orientation at the origin
func NewPiece(shape Shape) Piece {
	t := catalog[shape]
	return Piece{
		Shape: shape,
		Cells: t.cells,
		Size:  t.size,
	}
}

// SpawnPiece creates a piece horizontally centered on the top row of a
// grid of the given width
func SpawnPiece(shape Shape, gridWidth int) Piece {
	p := NewPiece(shape)
	p.X = (gridWidth - p.Size) / 2
	p.Y = 0
	return p
}

// Tag returns the cell value the piece leaves when it locks
func (p Piece) Tag() Cell {
	return p.Shape.Tag()
}

// Translated returns a copy moved by (dx, dy)
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned a quarter inside its rotation box. The
// O piece is returned unchanged.
func (p Piece) Rotated(dir Direction) Piece {
	if p.Shape == ShapeO {
		return p
	}

	var rotated [TetrominoSize][TetrominoSize]bool
	n := p.Size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if dir == Clockwise {
				rotated[c][n-1-r] = p.Cells[r][c]
			} else {
				rotated[n-1-c][r] = p.Cells[r][c]
			}
		}
	}
	p.Cells = rotated

	if dir == Clockwise {
		p.Rotation = (p.Rotation + 1) % 4
	} else {
		p.Rotation = (p.Rotation + 3) % 4
	}
	return p
}

// Blocks returns the grid positions of the four occupied cells
func (p Piece) Blocks() [4]Position {
	var blocks [4]Position
	i := 0
	for r := 0; r < TetrominoSize; r++ {
		for c := 0; c < TetrominoSize; c++ {
			if !p.Cells[r][c] || i == len(blocks) {
				continue
			}
			blocks[i] = Position{X: p.X + c, Y: p.Y + r}
			i++
		}
	}
	return blocks
}

// Occupies returns true if the piece covers grid cell (x, y)
func (p Piece) Occupies(x, y int) bool {
	r, c := y-p.Y, x-p.X
	if r < 0 || r >= TetrominoSize || c < 0 || c >= TetrominoSize {
		return false
	}
	return p.Cells[r][c]
}
