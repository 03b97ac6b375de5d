// Package render maps board state to what a front-end draws: tile kinds,
// glyphs and the classic palette.
package render

import (
	"image/color"

	"minesweeper/internal/board"
)

// Tile is the visual class of a single cell.
type Tile uint8

const (
	TileHidden Tile = iota
	TileFlag
	TileQuestion
	TileOpen
	TileNumber
	TileMine
	TileExploded
	TileWrongFlag
)

// TileFor classifies a cell view. Once the game is lost hidden mines are
// shown and flags on safe cells are marked wrong.
func TileFor(v board.CellView, lost bool) Tile {
	switch v.State {
	case board.Revealed:
		switch {
		case v.Exploded:
			return TileExploded
		case v.Mine:
			return TileMine
		case v.Adjacent > 0:
			return TileNumber
		default:
			return TileOpen
		}
	case board.Flagged:
		if lost && !v.Mine {
			return TileWrongFlag
		}
		return TileFlag
	case board.Questioned:
		if lost && v.Mine {
			return TileMine
		}
		return TileQuestion
	default:
		if lost && v.Mine {
			return TileMine
		}
		return TileHidden
	}
}

// Raised reports whether the tile is drawn as an unopened button.
func (t Tile) Raised() bool {
	switch t {
	case TileHidden, TileFlag, TileQuestion, TileWrongFlag:
		return true
	}
	return false
}

// Glyph is the single-character text for a tile.
func Glyph(t Tile, adjacent int) string {
	switch t {
	case TileFlag:
		return "F"
	case TileQuestion:
		return "?"
	case TileNumber:
		if adjacent >= 1 && adjacent <= 8 {
			return string(rune('0' + adjacent))
		}
	case TileMine, TileExploded:
		return "*"
	case TileWrongFlag:
		return "X"
	case TileHidden:
		return "#"
	}
	return " "
}

var (
	Background = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Header     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	MenuBG     = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	Unopened   = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	Opened     = color.RGBA{R: 205, G: 205, B: 205, A: 255}
	Highlight  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	Shadow     = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	Exploded   = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	FlagColor  = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Ink        = color.RGBA{A: 255}
)

var numberColors = [9]color.RGBA{
	{A: 255},
	{R: 0, G: 121, B: 241, A: 255},
	{R: 0, G: 228, B: 48, A: 255},
	{R: 230, G: 41, B: 55, A: 255},
	{R: 0, G: 82, B: 172, A: 255},
	{R: 190, G: 33, B: 55, A: 255},
	{R: 102, G: 191, B: 255, A: 255},
	{A: 255},
	{R: 130, G: 130, B: 130, A: 255},
}

// NumberColor returns the colour for an adjacency count of 1-8.
func NumberColor(n int) color.RGBA {
	if n < 0 || n >= len(numberColors) {
		return Ink
	}
	return numberColors[n]
}

// Face is the expression of the restart button.
type Face uint8

const (
	FaceNormal Face = iota
	FaceWorried
	FaceLost
	FaceWon
)

// FaceFor picks the face for a board phase; hoverQuestion is set when the
// pointer rests on a questioned cell.
func FaceFor(phase board.Phase, hoverQuestion bool) Face {
	switch phase {
	case board.Lost:
		return FaceLost
	case board.Won:
		return FaceWon
	}
	if hoverQuestion {
		return FaceWorried
	}
	return FaceNormal
}

// String is the ASCII face used by text front-ends.
func (f Face) String() string {
	switch f {
	case FaceWorried:
		return ":-o"
	case FaceLost:
		return "x_x"
	case FaceWon:
		return "B-)"
	}
	return ":-)"
}
