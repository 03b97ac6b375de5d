package board

// ThreeBV returns Bechtel's Board Benchmark Value: the minimum number of
// primary clicks that clear the board. Each zero-adjacency region counts once
// (its flood fill also opens the numbered cells bordering it) and every
// numbered cell outside such a border counts once. It is 0 before mines are
// placed.
func (b *Board) ThreeBV() int {
	if !b.minesPlaced {
		return 0
	}
	covered := make([]bool, len(b.cells))
	var stack, nbuf []int
	clicks := 0

	for idx := range b.cells {
		cell := b.cells[idx]
		if cell.mine || cell.adjacent != 0 || covered[idx] {
			continue
		}
		clicks++
		covered[idx] = true
		stack = append(stack[:0], idx)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			r, c := b.grid.Coords(cur)
			nbuf = b.grid.Neighbors(r, c, nbuf[:0])
			for _, ni := range nbuf {
				if covered[ni] || b.cells[ni].mine {
					continue
				}
				covered[ni] = true
				if b.cells[ni].adjacent == 0 {
					stack = append(stack, ni)
				}
			}
		}
	}

	for idx := range b.cells {
		if !b.cells[idx].mine && !covered[idx] {
			clicks++
		}
	}
	return clicks
}
