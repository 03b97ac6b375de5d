// Package board implements the Minesweeper board engine: deferred mine
// placement, flood-fill reveal, flag cycling and win/loss detection.
//
// The engine is single-threaded and never blocks. Invalid coordinates, clicks
// on cells that are not hidden and input after the game has ended are silent
// no-ops.
package board

import (
	"time"

	"minesweeper/internal/core"
	pkgcore "minesweeper/pkg/core"
)

// Source supplies the randomness used to place mines.
type Source interface {
	IntN(n int) int
}

// Board owns the cells of a single game plus its counters and terminal flags.
type Board struct {
	grid  core.Grid
	mines int
	cells []Cell
	src   Source

	flagsRemaining    int
	revealed          int
	minesPlaced       bool
	firstClickPending bool
	lost              bool
	won               bool
	exploded          core.Point

	work []int
	nbuf []int
}

// New allocates a rows×cols board with the given mine count. A nil src falls
// back to a generator seeded from the clock.
func New(rows, cols, mines int, src Source) *Board {
	if src == nil {
		src = pkgcore.NewRNG(time.Now().UnixNano())
	}
	b := &Board{src: src}
	b.Init(rows, cols, mines)
	return b
}

// Init resizes the board and starts a new game. Callers are expected to pass
// rows ≥ 1, cols ≥ 1 and 0 ≤ mines < rows*cols; see core.Preset.Validate.
func (b *Board) Init(rows, cols, mines int) {
	b.grid = core.NewGrid(rows, cols)
	b.mines = mines
	n := b.grid.Len()
	if cap(b.cells) >= n {
		b.cells = b.cells[:n]
	} else {
		b.cells = make([]Cell, n)
	}
	b.NewGame()
}

// NewGame resets every cell and counter in place, keeping the dimensions and
// mine count.
func (b *Board) NewGame() {
	clear(b.cells)
	b.flagsRemaining = b.mines
	b.revealed = 0
	b.minesPlaced = false
	b.firstClickPending = true
	b.lost = false
	b.won = false
	b.exploded = core.NoPoint
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.grid.Rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.grid.Cols }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return b.grid.Size() }

// MineCount is the number of mines the board holds once placed.
func (b *Board) MineCount() int { return b.mines }

// FlagsRemaining is the number of flags not currently on the board.
func (b *Board) FlagsRemaining() int { return b.flagsRemaining }

// RevealedCount is the number of revealed non-mine cells.
func (b *Board) RevealedCount() int { return b.revealed }

// MinesPlaced reports whether the first reveal has laid the mines.
func (b *Board) MinesPlaced() bool { return b.minesPlaced }

// FirstClickPending reports whether no reveal has happened yet.
func (b *Board) FirstClickPending() bool { return b.firstClickPending }

// Lost reports whether a mine was revealed.
func (b *Board) Lost() bool { return b.lost }

// Won reports whether the stored victory flag is set.
func (b *Board) Won() bool { return b.won }

// Over reports whether the game has reached a terminal state.
func (b *Board) Over() bool { return b.lost || b.won }

// Phase derives the lifecycle state from the board flags.
func (b *Board) Phase() Phase {
	switch {
	case b.lost:
		return Lost
	case b.won:
		return Won
	case !b.minesPlaced:
		return Fresh
	default:
		return Active
	}
}

// Exploded returns the coordinates of the mine that ended the game.
func (b *Board) Exploded() (row, col int, ok bool) {
	return b.exploded.Row, b.exploded.Col, b.exploded.Valid()
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool { return b.grid.InBounds(row, col) }

// State returns the state of (row, col). Out-of-range cells report Hidden.
func (b *Board) State(row, col int) State {
	if !b.grid.InBounds(row, col) {
		return Hidden
	}
	return b.cells[b.grid.Index(row, col)].state
}

// View returns the render-safe projection of (row, col).
func (b *Board) View(row, col int) (CellView, bool) {
	if !b.grid.InBounds(row, col) {
		return CellView{}, false
	}
	c := b.cells[b.grid.Index(row, col)]
	v := CellView{State: c.state}
	if c.state == Revealed {
		v.Adjacent = int(c.adjacent)
	}
	if c.state == Revealed || b.lost {
		v.Mine = c.mine
	}
	v.Exploded = b.exploded.Row == row && b.exploded.Col == col
	return v, true
}

// FlaggedCount is the number of cells currently flagged.
func (b *Board) FlaggedCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].state == Flagged {
			n++
		}
	}
	return n
}
