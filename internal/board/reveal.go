package board

import "minesweeper/internal/core"

// Reveal opens (row, col). It is a no-op out of bounds, on cells that are not
// hidden and after the game has ended. The first reveal of a game places the
// mines around the target cell.
//
// Revealing a mine loses the game and records the exploded cell. Revealing a
// cell with no adjacent mines opens its hidden neighbours transitively,
// stopping at numbered cells.
func (b *Board) Reveal(row, col int) {
	if b.Over() || !b.grid.InBounds(row, col) {
		return
	}
	idx := b.grid.Index(row, col)
	if b.cells[idx].state != Hidden {
		return
	}
	if !b.minesPlaced {
		b.PlaceMines(row, col)
		b.firstClickPending = false
	}

	cell := &b.cells[idx]
	if cell.mine {
		cell.state = Revealed
		b.lost = true
		b.exploded = core.Point{Row: row, Col: col}
		return
	}
	b.flood(idx)
}

// flood reveals start and, through an explicit work list, every hidden cell
// reachable across zero-adjacency cells. Cell state doubles as the visited set.
func (b *Board) flood(start int) {
	b.open(start)
	b.work = append(b.work[:0], start)
	for len(b.work) > 0 {
		idx := b.work[len(b.work)-1]
		b.work = b.work[:len(b.work)-1]
		if b.cells[idx].adjacent != 0 {
			continue
		}
		r, c := b.grid.Coords(idx)
		b.nbuf = b.grid.Neighbors(r, c, b.nbuf[:0])
		for _, ni := range b.nbuf {
			n := &b.cells[ni]
			if n.state != Hidden || n.mine {
				continue
			}
			b.open(ni)
			b.work = append(b.work, ni)
		}
	}
}

func (b *Board) open(idx int) {
	b.cells[idx].state = Revealed
	b.revealed++
}
