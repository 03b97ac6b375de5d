//go:build ebiten

package render

import (
	"image"
	"image/color"

	"minesweeper/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BoardPainter draws board cells as bevelled tiles.
type BoardPainter struct {
	face font.Face
}

// NewBoardPainter constructs a painter using the built-in bitmap font.
func NewBoardPainter() *BoardPainter {
	return &BoardPainter{face: basicfont.Face7x13}
}

// Draw paints every cell of b. cell maps grid coordinates to screen
// rectangles.
func (p *BoardPainter) Draw(screen *ebiten.Image, b *board.Board, cell func(row, col int) image.Rectangle) {
	lost := b.Lost()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			v, _ := b.View(r, c)
			p.drawTile(screen, cell(r, c), TileFor(v, lost), v.Adjacent)
		}
	}
}

func (p *BoardPainter) drawTile(screen *ebiten.Image, rect image.Rectangle, tile Tile, adjacent int) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())

	if tile.Raised() {
		FillRect(screen, rect, Unopened)
		vector.DrawFilledRect(screen, x, y, w, 3, Highlight, false)
		vector.DrawFilledRect(screen, x, y, 3, h, Highlight, false)
		vector.DrawFilledRect(screen, x, y+h-3, w, 3, Shadow, false)
		vector.DrawFilledRect(screen, x+w-3, y, 3, h, Shadow, false)
	} else {
		bg := Opened
		if tile == TileExploded {
			bg = Exploded
		}
		FillRect(screen, rect, bg)
		vector.StrokeRect(screen, x, y, w, h, 1, Header, false)
	}

	switch tile {
	case TileMine, TileExploded:
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, w/4, Ink, true)
		vector.DrawFilledCircle(screen, x+w/2-w/12, y+h/2-h/12, w/16, Highlight, true)
	case TileFlag, TileWrongFlag:
		vector.DrawFilledRect(screen, x+w/2-1, y+h/4, 3, h/2, Ink, false)
		vector.DrawFilledRect(screen, x+w/2-w/5, y+h/4, w/5, h/5, FlagColor, false)
		if tile == TileWrongFlag {
			p.DrawCentered(screen, "X", rect, Ink)
		}
	case TileQuestion:
		p.DrawCentered(screen, "?", rect, Ink)
	case TileNumber:
		p.DrawCentered(screen, Glyph(tile, adjacent), rect, NumberColor(adjacent))
	}
}

// DrawCentered draws s centred inside rect.
func (p *BoardPainter) DrawCentered(screen *ebiten.Image, s string, rect image.Rectangle, clr color.Color) {
	bounds := text.BoundString(p.face, s)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, p.face, x, y, clr)
}

// Face returns the font used for labels.
func (p *BoardPainter) Face() font.Face { return p.face }

// FillRect fills rect with clr.
func FillRect(dst *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), clr, false)
}
