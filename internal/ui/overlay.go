//go:build ebiten

package ui

import (
	"image/color"

	"minesweeper/internal/board"
	"minesweeper/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const bannerScale = 3

// Overlay draws the end-of-game banner across the grid.
type Overlay struct {
	banner  *Banner
	painter *render.BoardPainter
}

// NewOverlay constructs an overlay for banner.
func NewOverlay(banner *Banner, painter *render.BoardPainter) *Overlay {
	return &Overlay{banner: banner, painter: painter}
}

// Draw renders the banner with its current fade.
func (o *Overlay) Draw(screen *ebiten.Image, l Layout) {
	alpha := o.banner.Alpha()
	if alpha <= 0 {
		return
	}
	msg := o.banner.Message()
	grid := l.Grid()
	bounds := text.BoundString(o.painter.Face(), msg)
	w := float32(bounds.Dx() * bannerScale)
	h := float32(bounds.Dy() * bannerScale)
	cx := float32(grid.Min.X+grid.Max.X) / 2
	cy := float32(grid.Min.Y+grid.Max.Y) / 2

	vector.DrawFilledRect(screen, cx-w/2-16, cy-h/2-12, w+32, h+24, fade(color.RGBA{A: 200}, alpha), false)

	clr := color.RGBA{R: 0, G: 228, B: 48, A: 255}
	if o.banner.phase == board.Lost {
		clr = render.Exploded
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(-bounds.Min.X), float64(-bounds.Min.Y))
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(float64(cx-w/2), float64(cy-h/2))
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.DrawWithOptions(screen, msg, o.painter.Face(), op)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
