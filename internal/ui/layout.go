package ui

import (
	"image"

	"minesweeper/internal/core"
)

// Screen geometry in logical pixels.
const (
	CellSize     = 48
	Margin       = 60
	GridTop      = 80
	HeaderTop    = 10
	HeaderHeight = 50
	FooterHeight = 40

	faceSize   = 40
	boxWidth   = 110
	boxHeight  = 30
	menuWidth  = 360
	menuHeight = 420
	buttonW    = 200
	buttonH    = 50
	buttonGap  = 20
	menuTop    = 120
)

// Layout places the header, grid and menu for a board of a given size.
type Layout struct {
	Rows, Cols int
}

// NewLayout returns the layout for size.
func NewLayout(size core.Size) Layout {
	return Layout{Rows: size.Rows, Cols: size.Cols}
}

// WindowSize is the window needed to show the board with its margins.
func (l Layout) WindowSize() (int, int) {
	return l.Cols*CellSize + 2*Margin, l.Rows*CellSize + 2*Margin + FooterHeight
}

// Grid is the rectangle covered by the cells.
func (l Layout) Grid() image.Rectangle {
	return image.Rect(Margin, GridTop, Margin+l.Cols*CellSize, GridTop+l.Rows*CellSize)
}

// Cell is the rectangle covered by the cell at (row, col).
func (l Layout) Cell(row, col int) image.Rectangle {
	x := Margin + col*CellSize
	y := GridTop + row*CellSize
	return image.Rect(x, y, x+CellSize, y+CellSize)
}

// CellAt maps a screen position to grid coordinates.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if !image.Pt(x, y).In(l.Grid()) {
		return 0, 0, false
	}
	return (y - GridTop) / CellSize, (x - Margin) / CellSize, true
}

// Header is the strip above the grid holding the counters and the face.
func (l Layout) Header() image.Rectangle {
	w, _ := l.WindowSize()
	return image.Rect(0, HeaderTop, w, HeaderTop+HeaderHeight)
}

// Face is the restart button centred in the header.
func (l Layout) Face() image.Rectangle {
	w, _ := l.WindowSize()
	x := (w - faceSize) / 2
	y := HeaderTop + (HeaderHeight-faceSize)/2
	return image.Rect(x, y, x+faceSize, y+faceSize)
}

// Counter is the flags-remaining box on the left of the header.
func (l Layout) Counter() image.Rectangle {
	y := HeaderTop + (HeaderHeight-boxHeight)/2
	return image.Rect(Margin, y, Margin+boxWidth, y+boxHeight)
}

// Clock is the elapsed-time box on the right of the header.
func (l Layout) Clock() image.Rectangle {
	w, _ := l.WindowSize()
	y := HeaderTop + (HeaderHeight-boxHeight)/2
	return image.Rect(w-Margin-boxWidth, y, w-Margin, y+boxHeight)
}

// MenuSize is the window used while choosing a difficulty.
func MenuSize(buttons int) (int, int) {
	h := menuTop + buttons*(buttonH+buttonGap) + 80
	if h < menuHeight {
		h = menuHeight
	}
	return menuWidth, h
}

// MenuButton is the rectangle of the i-th menu entry.
func MenuButton(i int) image.Rectangle {
	x := (menuWidth - buttonW) / 2
	y := menuTop + i*(buttonH+buttonGap)
	return image.Rect(x, y, x+buttonW, y+buttonH)
}

// MenuButtonAt returns the index of the menu entry under (x, y).
func MenuButtonAt(x, y, buttons int) (int, bool) {
	p := image.Pt(x, y)
	for i := 0; i < buttons; i++ {
		if p.In(MenuButton(i)) {
			return i, true
		}
	}
	return 0, false
}
