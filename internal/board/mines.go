package board

import "minesweeper/internal/core"

// safeRadius is the half-width of the exclusion zone around the first click.
const safeRadius = 1

// PlaceMines lays the board's mines, keeping (safeRow, safeCol) and its
// neighbours clear, then computes adjacency counts. It runs at most once per
// game.
//
// Cells are drawn uniformly from the board's Source and rejected when they
// fall inside the exclusion zone or already hold a mine. When the board is too
// small for the full 3×3 zone only the clicked cell is kept clear.
func (b *Board) PlaceMines(safeRow, safeCol int) {
	if b.minesPlaced {
		return
	}
	radius := safeRadius
	if b.grid.Len()-b.zoneSize(safeRow, safeCol, radius) < b.mines {
		radius = 0
	}
	target := min(b.mines, b.grid.Len()-b.zoneSize(safeRow, safeCol, radius))

	placed := 0
	for placed < target {
		r := b.src.IntN(b.grid.Rows)
		c := b.src.IntN(b.grid.Cols)
		if core.Within(r, c, safeRow, safeCol, radius) {
			continue
		}
		cell := &b.cells[b.grid.Index(r, c)]
		if cell.mine {
			continue
		}
		cell.mine = true
		placed++
	}

	b.countAdjacent()
	b.minesPlaced = true
}

// zoneSize counts the on-board cells within radius of (row, col).
func (b *Board) zoneSize(row, col, radius int) int {
	n := 0
	for r := row - radius; r <= row+radius; r++ {
		for c := col - radius; c <= col+radius; c++ {
			if b.grid.InBounds(r, c) {
				n++
			}
		}
	}
	return n
}

func (b *Board) countAdjacent() {
	for idx := range b.cells {
		if b.cells[idx].mine {
			continue
		}
		r, c := b.grid.Coords(idx)
		b.nbuf = b.grid.Neighbors(r, c, b.nbuf[:0])
		var n uint8
		for _, ni := range b.nbuf {
			if b.cells[ni].mine {
				n++
			}
		}
		b.cells[idx].adjacent = n
	}
}
