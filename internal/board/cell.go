package board

// State is the player-visible state of a single cell.
type State uint8

const (
	// Hidden is the initial state of every cell.
	Hidden State = iota
	// Revealed is terminal; it is only reached from Hidden.
	Revealed
	// Flagged marks a suspected mine and consumes one flag.
	Flagged
	// Questioned marks an uncertain cell; the flag has been returned.
	Questioned
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	default:
		return "unknown"
	}
}

// Cell is one grid position. The zero value is a hidden, mine-free cell.
type Cell struct {
	mine     bool
	adjacent uint8
	state    State
}

// CellView is the render-safe projection of a Cell. Mine is only reported for
// revealed cells or once the board is lost, and Adjacent only for revealed
// cells.
type CellView struct {
	State    State
	Adjacent int
	Mine     bool
	Exploded bool
}

// Phase is the board-level lifecycle state.
type Phase uint8

const (
	// Fresh boards have no mines yet; the first reveal places them.
	Fresh Phase = iota
	// Active boards have mines placed and the game is still running.
	Active
	// Lost boards had a mine revealed.
	Lost
	// Won boards have every safe cell revealed or every mine flagged.
	Won
)

func (p Phase) String() string {
	switch p {
	case Fresh:
		return "fresh"
	case Active:
		return "active"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}
