// Package ui holds the graphical widgets drawn around the board: the header
// with counters and face, the difficulty menu and the end-of-game banner.
package ui

import (
	"time"

	"minesweeper/internal/board"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const bannerFade = 600 * time.Millisecond

// Banner tracks the end-of-game message and its fade-in.
type Banner struct {
	phase board.Phase
	tween *gween.Tween
	alpha float32
}

// NewBanner returns a hidden banner.
func NewBanner() *Banner {
	return &Banner{tween: gween.New(0, 1, float32(bannerFade.Seconds()), ease.OutQuad)}
}

// Update follows the board phase and advances the fade by dt. The fade
// restarts whenever a game ends.
func (b *Banner) Update(phase board.Phase, dt time.Duration) {
	if phase != b.phase {
		b.phase = phase
		b.tween.Reset()
		b.alpha = 0
	}
	if !b.Visible() {
		return
	}
	b.alpha, _ = b.tween.Update(float32(dt.Seconds()))
}

// Visible reports whether there is a message to show.
func (b *Banner) Visible() bool {
	return b.phase == board.Won || b.phase == board.Lost
}

// Message is the banner text for the current phase.
func (b *Banner) Message() string {
	switch b.phase {
	case board.Won:
		return "YOU WIN!"
	case board.Lost:
		return "GAME OVER!"
	}
	return ""
}

// Alpha is the current opacity in [0, 1].
func (b *Banner) Alpha() float32 {
	if !b.Visible() {
		return 0
	}
	return b.alpha
}
