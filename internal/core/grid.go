package core

// Grid maps (row, col) coordinates onto a row-major flat slice index.
type Grid struct {
	Rows, Cols int
}

// NewGrid returns index math for a rows×cols grid. Non-positive dimensions
// are clamped to 1.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return Grid{Rows: rows, Cols: cols}
}

// Len is the number of cells in the grid.
func (g Grid) Len() int { return g.Rows * g.Cols }

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Index returns the linear slice index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.Cols + col }

// Coords is the inverse of Index.
func (g Grid) Coords(idx int) (row, col int) { return idx / g.Cols, idx % g.Cols }

// InBounds reports whether (row, col) lies on the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Neighbors appends the indices of the up to 8 cells surrounding (row, col)
// to buf and returns it. Cells outside the grid are skipped.
func (g Grid) Neighbors(row, col int, buf []int) []int {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if g.InBounds(nr, nc) {
				buf = append(buf, nr*g.Cols+nc)
			}
		}
	}
	return buf
}

// Within reports whether (row, col) lies in the square of the given radius
// centred on (centerRow, centerCol).
func Within(row, col, centerRow, centerCol, radius int) bool {
	return abs(row-centerRow) <= radius && abs(col-centerCol) <= radius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
