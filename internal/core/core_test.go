package core

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestGridNeighborsClipsAtEdges(t *testing.T) {
	g := NewGrid(3, 4)

	corner := g.Neighbors(0, 0, nil)
	if want := []int{1, 4, 5}; !slices.Equal(corner, want) {
		t.Fatalf("corner neighbors = %v, want %v", corner, want)
	}

	edge := g.Neighbors(0, 2, nil)
	if len(edge) != 5 {
		t.Fatalf("edge cell expected 5 neighbors, got %d", len(edge))
	}

	inner := g.Neighbors(1, 1, nil)
	if want := []int{0, 1, 2, 4, 6, 8, 9, 10}; !slices.Equal(inner, want) {
		t.Fatalf("inner neighbors = %v, want %v", inner, want)
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(5, 7)
	for idx := 0; idx < g.Len(); idx++ {
		r, c := g.Coords(idx)
		if !g.InBounds(r, c) {
			t.Fatalf("coords (%d,%d) for index %d out of bounds", r, c, idx)
		}
		if got := g.Index(r, c); got != idx {
			t.Fatalf("Index(%d,%d) = %d, want %d", r, c, got, idx)
		}
	}
	if g.InBounds(-1, 0) || g.InBounds(0, 7) || g.InBounds(5, 0) {
		t.Fatal("out-of-range coordinates reported in bounds")
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Rows != 1 || g.Cols != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.Rows, g.Cols)
	}
}

func TestWithin(t *testing.T) {
	if !Within(1, 1, 0, 0, 1) {
		t.Fatal("diagonal neighbour should be within radius 1")
	}
	if Within(2, 0, 0, 0, 1) {
		t.Fatal("cell two rows away should be outside radius 1")
	}
}

func TestPresetValidate(t *testing.T) {
	cases := []struct {
		name string
		p    Preset
		ok   bool
	}{
		{"normal", Preset{Name: "n", Rows: 9, Cols: 9, Mines: 10}, true},
		{"no mines", Preset{Name: "z", Rows: 1, Cols: 1, Mines: 0}, true},
		{"missing name", Preset{Rows: 9, Cols: 9, Mines: 10}, false},
		{"zero rows", Preset{Name: "r", Rows: 0, Cols: 9, Mines: 1}, false},
		{"negative mines", Preset{Name: "m", Rows: 3, Cols: 3, Mines: -1}, false},
		{"full board", Preset{Name: "f", Rows: 3, Cols: 3, Mines: 9}, false},
	}
	for _, tc := range cases {
		err := tc.p.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidPreset) {
			t.Errorf("%s: expected ErrInvalidPreset, got %v", tc.name, err)
		}
	}
}

func TestBuiltinPresets(t *testing.T) {
	normal, ok := LookupPreset("normal")
	if !ok || normal.Rows != 9 || normal.Cols != 9 || normal.Mines != 10 {
		t.Fatalf("unexpected normal preset %+v (found=%v)", normal, ok)
	}
	hard, ok := LookupPreset("hard")
	if !ok || hard.Rows != 16 || hard.Cols != 16 || hard.Mines != 40 {
		t.Fatalf("unexpected hard preset %+v (found=%v)", hard, ok)
	}
	list := Presets()
	if len(list) < 2 || list[0].Name != "normal" || list[1].Name != "hard" {
		t.Fatalf("expected builtin presets first in registration order, got %+v", list)
	}
}

func TestRegisterPresetRejectsInvalid(t *testing.T) {
	before := len(Presets())
	if err := RegisterPreset(Preset{Name: "broken", Rows: 2, Cols: 2, Mines: 4}); err == nil {
		t.Fatal("expected invalid preset to be rejected")
	}
	if _, ok := LookupPreset("broken"); ok {
		t.Fatal("invalid preset must not be registered")
	}
	if len(Presets()) != before {
		t.Fatal("preset list changed after rejected registration")
	}
}

func TestStopwatchOnlyAdvancesWhileRunning(t *testing.T) {
	var sw Stopwatch
	sw.Advance(time.Second)
	if sw.Elapsed() != 0 {
		t.Fatalf("stopped stopwatch advanced to %v", sw.Elapsed())
	}
	sw.Start()
	sw.Advance(1500 * time.Millisecond)
	sw.Advance(-time.Second)
	sw.Stop()
	sw.Advance(time.Minute)
	if got := sw.Elapsed(); got != 1500*time.Millisecond {
		t.Fatalf("elapsed = %v, want 1.5s", got)
	}
	sw.Reset()
	if sw.Elapsed() != 0 || sw.Running() {
		t.Fatal("reset should clear elapsed time and stop")
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                     "00:00",
		59*time.Second + 900*time.Millisecond: "00:59",
		61 * time.Second:                      "01:01",
		75 * time.Minute:                      "75:00",
		-time.Second:                          "00:00",
	}
	for d, want := range cases {
		if got := FormatClock(d); got != want {
			t.Errorf("FormatClock(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	if got := FrameDelta(50); got != 20*time.Millisecond {
		t.Fatalf("FrameDelta(50) = %v", got)
	}
	if got := FrameDelta(0); got != time.Second/60 {
		t.Fatalf("FrameDelta(0) should default to 60 TPS, got %v", got)
	}
}
