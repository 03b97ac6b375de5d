package board

// CycleFlag advances (row, col) through Hidden → Flagged → Questioned →
// Hidden. Flagging takes a flag from the pool and is refused when none are
// left; questioning returns it. Revealed cells are left alone.
func (b *Board) CycleFlag(row, col int) {
	if b.Over() || !b.grid.InBounds(row, col) {
		return
	}
	cell := &b.cells[b.grid.Index(row, col)]
	switch cell.state {
	case Hidden:
		if b.flagsRemaining > 0 {
			cell.state = Flagged
			b.flagsRemaining--
		}
	case Flagged:
		cell.state = Questioned
		b.flagsRemaining++
	case Questioned:
		cell.state = Hidden
	}
}

// CheckVictory reports whether the game is won: every safe cell revealed, or
// every mine flagged. A board without mines can never be won.
func (b *Board) CheckVictory() bool {
	if !b.minesPlaced {
		return false
	}
	if b.revealed == b.grid.Len()-b.mines {
		return true
	}
	for i := range b.cells {
		if b.cells[i].mine && b.cells[i].state != Flagged {
			return false
		}
	}
	return true
}

// HandleClick dispatches a grid click. Primary clicks reveal hidden cells
// (placing mines on the first one) and then evaluate victory unless the reveal
// lost the game. Secondary clicks cycle the flag and re-evaluate victory.
func (b *Board) HandleClick(row, col int, primary bool) {
	if b.Over() || !b.grid.InBounds(row, col) {
		return
	}
	if !primary {
		b.CycleFlag(row, col)
		if b.CheckVictory() {
			b.won = true
		}
		return
	}

	if b.cells[b.grid.Index(row, col)].state != Hidden {
		return
	}
	b.Reveal(row, col)
	if b.lost {
		return
	}
	b.won = b.CheckVictory()
}
