package ui

import (
	"testing"
	"time"

	"minesweeper/internal/board"
)

func TestBannerFadesInAfterGameEnds(t *testing.T) {
	b := NewBanner()
	b.Update(board.Active, 100*time.Millisecond)
	if b.Visible() || b.Alpha() != 0 || b.Message() != "" {
		t.Fatal("banner should be hidden while playing")
	}

	b.Update(board.Lost, 0)
	if !b.Visible() || b.Message() != "GAME OVER!" {
		t.Fatalf("lost banner = %q", b.Message())
	}
	prev := b.Alpha()
	for i := 0; i < 5; i++ {
		b.Update(board.Lost, 100*time.Millisecond)
		if b.Alpha() < prev {
			t.Fatalf("alpha decreased from %v to %v", prev, b.Alpha())
		}
		prev = b.Alpha()
	}
	b.Update(board.Lost, time.Second)
	if b.Alpha() != 1 {
		t.Fatalf("alpha after fade = %v, want 1", b.Alpha())
	}
}

func TestBannerRestartsOnNewResult(t *testing.T) {
	b := NewBanner()
	b.Update(board.Won, time.Second)
	if b.Message() != "YOU WIN!" || b.Alpha() != 1 {
		t.Fatalf("won banner = %q alpha %v", b.Message(), b.Alpha())
	}
	b.Update(board.Fresh, 0)
	if b.Visible() || b.Alpha() != 0 {
		t.Fatal("new game should hide the banner")
	}
	b.Update(board.Lost, 0)
	if b.Alpha() != 0 {
		t.Fatal("fade should restart from zero")
	}
}
