//go:build ebiten

package ui

import (
	"image"

	"minesweeper/internal/core"
	"minesweeper/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Menu lists the registered difficulties plus an Exit entry.
type Menu struct {
	presets []core.Preset
	painter *render.BoardPainter
	hover   int
}

// NewMenu builds a menu over presets.
func NewMenu(presets []core.Preset, painter *render.BoardPainter) *Menu {
	return &Menu{presets: presets, painter: painter, hover: -1}
}

// Size returns the window size the menu wants.
func (m *Menu) Size() (int, int) { return MenuSize(len(m.presets) + 1) }

// Hover records the pointer position for highlighting.
func (m *Menu) Hover(x, y int) {
	m.hover = -1
	if i, ok := MenuButtonAt(x, y, len(m.presets)+1); ok {
		m.hover = i
	}
}

// Pick maps a click to a preset. exit is set when the Exit entry was hit.
func (m *Menu) Pick(x, y int) (p core.Preset, exit, ok bool) {
	i, hit := MenuButtonAt(x, y, len(m.presets)+1)
	if !hit {
		return core.Preset{}, false, false
	}
	if i == len(m.presets) {
		return core.Preset{}, true, true
	}
	return m.presets[i], false, true
}

// Draw paints the menu.
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(render.MenuBG)
	w, _ := m.Size()
	title := "MINESWEEPER"
	b := text.BoundString(m.painter.Face(), title)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(-b.Min.X), float64(-b.Min.Y))
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(w-2*b.Dx())/2, 50)
	op.ColorScale.ScaleWithColor(render.Highlight)
	text.DrawWithOptions(screen, title, m.painter.Face(), op)

	for i := 0; i <= len(m.presets); i++ {
		label := "Exit"
		if i < len(m.presets) {
			p := m.presets[i]
			label = p.Title()
		}
		m.drawButton(screen, MenuButton(i), label, i == m.hover)
	}

	hint := "Press Esc to return to the menu"
	last := MenuButton(len(m.presets))
	hb := text.BoundString(m.painter.Face(), hint)
	text.Draw(screen, hint, m.painter.Face(), (w-hb.Dx())/2, last.Max.Y+40, render.Highlight)
}

func (m *Menu) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, hover bool) {
	bg := render.Unopened
	if hover {
		bg = render.Highlight
	}
	render.FillRect(screen, rect, bg)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, render.Shadow, false)
	m.painter.DrawCentered(screen, label, rect, render.Ink)
}
