//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"minesweeper/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD renders the header strip: flags remaining, the face button and the
// play clock.
type HUD struct {
	painter *render.BoardPainter
}

// NewHUD constructs a HUD sharing the board painter's font.
func NewHUD(painter *render.BoardPainter) *HUD {
	return &HUD{painter: painter}
}

// Draw paints the header for layout l.
func (h *HUD) Draw(screen *ebiten.Image, l Layout, flags int, face render.Face, elapsed string) {
	render.FillRect(screen, l.Header(), render.Header)

	h.drawBox(screen, l.Counter(), fmt.Sprintf("Bomb: %03d", clampCounter(flags)))
	h.drawBox(screen, l.Clock(), "Time: "+elapsed)
	h.drawFace(screen, l.Face(), face)
}

func (h *HUD) drawBox(screen *ebiten.Image, rect image.Rectangle, label string) {
	render.FillRect(screen, rect, render.Ink)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, render.Unopened, false)
	h.painter.DrawCentered(screen, label, rect, color.RGBA{R: 255, G: 60, B: 60, A: 255})
}

func (h *HUD) drawFace(screen *ebiten.Image, rect image.Rectangle, face render.Face) {
	render.FillRect(screen, rect, render.Unopened)
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, hh := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, 3, render.Highlight, false)
	vector.DrawFilledRect(screen, x, y+hh-3, w, 3, render.Shadow, false)

	cx, cy := x+w/2, y+hh/2
	fill := color.RGBA{R: 255, G: 220, B: 0, A: 255}
	if face == render.FaceLost {
		fill = color.RGBA{R: 220, G: 180, B: 0, A: 255}
	}
	vector.DrawFilledCircle(screen, cx, cy, w/2-5, fill, true)
	vector.StrokeCircle(screen, cx, cy, w/2-5, 1, render.Ink, true)

	label := face.String()
	bounds := text.BoundString(h.painter.Face(), label)
	text.Draw(screen, label, h.painter.Face(), int(cx)-bounds.Dx()/2, int(cy)-bounds.Min.Y-bounds.Dy()/2, render.Ink)
}

// FaceHit reports whether (x, y) is on the face button.
func FaceHit(l Layout, x, y int) bool {
	return image.Pt(x, y).In(l.Face())
}

// InHeader reports whether (x, y) falls on the header strip.
func InHeader(l Layout, x, y int) bool {
	return image.Pt(x, y).In(l.Header())
}

func clampCounter(n int) int {
	if n < 0 {
		return 0
	}
	if n > 999 {
		return 999
	}
	return n
}
