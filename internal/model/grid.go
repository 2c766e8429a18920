package model

// Cell is a settled grid cell: CellEmpty or the tag of the piece that locked there
type Cell uint8

// CellEmpty marks a free cell
const CellEmpty Cell = 0

// Position identifies a cell on the grid
type Position struct {
	X int // 0-indexed from left
	Y int // 0-indexed from top
}

// Grid is the matrix of settled cells. The falling piece is never part of it.
type Grid struct {
	width  int
	height int
	cells  []Cell // Row-major: cells[y*width+x]
}

// NewGrid creates an empty grid of the given size
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y), or CellEmpty if out of bounds
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellEmpty
	}
	return g.cells[y*g.width+x]
}

// Set writes a cell; out of bounds writes are ignored
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = c
	}
}

// IsCellFree reports whether (x, y) is inside the grid and empty.
// Out of bounds counts as occupied, so one predicate covers walls,
// floor and settled cells.
func (g *Grid) IsCellFree(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x] == CellEmpty
}

// IsRowFilled returns true if every cell in row y is occupied
func (g *Grid) IsRowFilled(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for _, c := range g.row(y) {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// CopyRow copies row src over row dst
func (g *Grid) CopyRow(dst, src int) {
	copy(g.row(dst), g.row(src))
}

// ClearRow empties row y
func (g *Grid) ClearRow(y int) {
	clear(g.row(y))
}

// Reset empties every cell
func (g *Grid) Reset() {
	clear(g.cells)
}

// Rows returns a copy of the grid as Rows[y][x]
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range rows {
		rows[y] = make([]Cell, g.width)
		copy(rows[y], g.row(y))
	}
	return rows
}

// FilledCount returns the number of occupied cells
func (g *Grid) FilledCount() int {
	count := 0
	for _, c := range g.cells {
		if c != CellEmpty {
			count++
		}
	}
	return count
}

func (g *Grid) row(y int) []Cell {
	return g.cells[y*g.width : (y+1)*g.width]
}
