package model

// TetrominoSize is the side of the square matrix holding any tetromino
const TetrominoSize = 4

// Shape identifies one of the seven tetrominoes
type Shape int

// Shapes in catalog order. Initial cell disposition is shown for each.
const (
	// ....
	// ####
	// ....
	// ....
	ShapeI Shape = iota
	// ##..
	// ##..
	ShapeO
	// .#..
	// ###.
	ShapeT
	// .##.
	// ##..
	ShapeS
	// ##..
	// .##.
	ShapeZ
	// #...
	// ###.
	ShapeJ
	// ..#.
	// ###.
	ShapeL
)

// ShapeCount is the number of tetromino types
const ShapeCount = 7

var shapeNames = [ShapeCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// String returns the single-letter name of the shape
func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return shapeNames[s]
}

// Valid returns true if s is one of the seven shapes
func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

// Tag returns the cell value used when a piece of this shape locks
func (s Shape) Tag() Cell {
	return Cell(s + 1)
}

// ShapeOf returns the shape that produced a non-empty cell
func ShapeOf(c Cell) (Shape, bool) {
	if c == CellEmpty || int(c) > ShapeCount {
		return 0, false
	}
	return Shape(c - 1), true
}

type template struct {
	size  int
	cells [TetrominoSize][TetrominoSize]bool // [row][col]
}

// catalog holds the canonical orientation of every shape. size is the
// rotation box: pieces turn inside the top-left size x size corner.
var catalog = [ShapeCount]template{
	ShapeI: {size: 4, cells: [TetrominoSize][TetrominoSize]bool{
		{false, false, false, false},
		{true, true, true, true},
	}},
	ShapeO: {size: 2, cells: [TetrominoSize][TetrominoSize]bool{
		{true, true},
		{true, true},
	}},
	ShapeT: {size: 3, cells: [TetrominoSize][TetrominoSize]bool{
		{false, true, false},
		{true, true, true},
	}},
	ShapeS: {size: 3, cells: [TetrominoSize][TetrominoSize]bool{
		{false, true, true},
		{true, true, false},
	}},
	ShapeZ: {size: 3, cells: [TetrominoSize][TetrominoSize]bool{
		{true, true, false},
		{false, true, true},
	}},
	ShapeJ: {size: 3, cells: [TetrominoSize][TetrominoSize]bool{
		{true, false, false},
		{true, true, true},
	}},
	ShapeL: {size: 3, cells: [TetrominoSize][TetrominoSize]bool{
		{false, false, true},
		{true, true, true},
	}},
}

// AllShapes returns the seven shapes in catalog order
func AllShapes() [ShapeCount]Shape {
	return [ShapeCount]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
}
