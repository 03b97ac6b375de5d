package core

// Size describes the dimensions of a board in cells.
type Size struct {
	Rows int
	Cols int
}

// Point addresses a single cell.
type Point struct {
	Row int
	Col int
}

// NoPoint is the sentinel used where no cell applies.
var NoPoint = Point{Row: -1, Col: -1}

// Valid reports whether p refers to a cell rather than the sentinel.
func (p Point) Valid() bool { return p.Row >= 0 && p.Col >= 0 }
