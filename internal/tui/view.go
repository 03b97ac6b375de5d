// Package tui is a terminal front-end for a Session built on tview.
package tui

import (
	"fmt"
	"time"

	"minesweeper/internal/app"
	"minesweeper/internal/board"
	"minesweeper/internal/core"
	"minesweeper/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const help = "arrows move  enter/space reveal  f flag  n new game  q quit"

// View renders a session as a table of glyphs with a status line.
type View struct {
	session *app.Session
	table   *tview.Table
	status  *tview.TextView
	root    *tview.Flex
	quit    func()
}

// NewView builds the widgets for session. quit is called on q or Esc.
func NewView(session *app.Session, quit func()) *View {
	v := &View{
		session: session,
		table:   tview.NewTable(),
		status:  tview.NewTextView(),
		quit:    quit,
	}
	v.table.SetSelectable(true, true)
	v.table.SetInputCapture(v.handleKey)
	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true).
		AddItem(v.status, 2, 0, false)
	v.Redraw()
	v.table.Select(session.Board().Rows()/2, session.Board().Cols()/2)
	return v
}

// Root is the primitive to hand to tview.Application.SetRoot.
func (v *View) Root() tview.Primitive { return v.root }

// Redraw refreshes every cell and the status line from the session.
func (v *View) Redraw() {
	b := v.session.Board()
	lost := b.Lost()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cv, _ := b.View(r, c)
			tile := render.TileFor(cv, lost)
			cell := tview.NewTableCell(render.Glyph(tile, cv.Adjacent)).
				SetAlign(tview.AlignCenter).
				SetTextColor(tileColor(tile, cv.Adjacent))
			v.table.SetCell(r, c, cell)
		}
	}

	face := render.FaceFor(b.Phase(), v.selectedQuestioned())
	result := ""
	switch {
	case b.Won():
		result = "  YOU WIN!"
	case b.Lost():
		result = "  GAME OVER!"
	}
	v.status.SetText(fmt.Sprintf("%s  Bomb: %03d  Time: %s  [%s]%s\n%s",
		face, b.FlagsRemaining(), core.FormatClock(v.session.Elapsed()), v.session.Preset().Title(), result, help))
}

// Tick advances the play clock and refreshes the status line.
func (v *View) Tick(dt time.Duration) {
	v.session.Tick(dt)
	v.Redraw()
}

func (v *View) selectedQuestioned() bool {
	row, col := v.table.GetSelection()
	return v.session.Board().State(row, col) == board.Questioned
}

func (v *View) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		v.quit()
		return nil
	case tcell.KeyEnter:
		v.click(true)
		return nil
	case tcell.KeyRune:
	default:
		return ev
	}

	switch ev.Rune() {
	case ' ':
		v.click(true)
	case 'f', 'F':
		v.click(false)
	case 'n', 'N':
		v.session.Restart()
		v.Redraw()
	case 'q', 'Q':
		v.quit()
	default:
		return ev
	}
	return nil
}

func (v *View) click(primary bool) {
	row, col := v.table.GetSelection()
	v.session.Click(row, col, primary)
	v.Redraw()
}

func tileColor(t render.Tile, adjacent int) tcell.Color {
	switch t {
	case render.TileNumber:
		c := render.NumberColor(adjacent)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	case render.TileFlag, render.TileExploded, render.TileWrongFlag:
		return tcell.ColorRed
	case render.TileMine:
		return tcell.ColorWhite
	case render.TileQuestion:
		return tcell.ColorYellow
	}
	return tcell.ColorGray
}
