package bench

import (
	"context"
	"errors"
	"slices"
	"testing"

	"minesweeper/internal/core"
)

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	p, _ := core.LookupPreset("normal")
	one, err := Run(context.Background(), p, Options{Boards: 40, BaseSeed: 100, Workers: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	many, err := Run(context.Background(), p, Options{Boards: 40, BaseSeed: 100, Workers: 8})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !slices.Equal(one, many) {
		t.Fatal("results depend on worker count")
	}
	for i, r := range one {
		if r.Seed != 100+int64(i) {
			t.Fatalf("result %d has seed %d", i, r.Seed)
		}
		if r.Opening < 1 || r.ThreeBV < 1 {
			t.Fatalf("result %d: opening=%d 3bv=%d", i, r.Opening, r.ThreeBV)
		}
	}
}

func TestPlayNeverLosesOnFirstClick(t *testing.T) {
	p, _ := core.LookupPreset("hard")
	for seed := int64(0); seed < 100; seed++ {
		r := Play(p, seed)
		if r.Opening == 0 {
			t.Fatalf("seed %d: first click revealed nothing", seed)
		}
		if r.Revealed <= 0 || r.Revealed > 1 {
			t.Fatalf("seed %d: revealed fraction %v", seed, r.Revealed)
		}
	}
}

func TestPlayEmptyBoardIsInstantWin(t *testing.T) {
	p := core.Preset{Name: "empty", Rows: 4, Cols: 4, Mines: 0}
	r := Play(p, 1)
	if !r.Won || r.Opening != 16 || r.ThreeBV != 1 || r.Revealed != 1 {
		t.Fatalf("empty board result %+v", r)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	p, _ := core.LookupPreset("normal")
	if _, err := Run(context.Background(), p, Options{Boards: 0}); err == nil {
		t.Fatal("expected an error for zero boards")
	}
	bad := core.Preset{Name: "bad", Rows: 2, Cols: 2, Mines: 4}
	if _, err := Run(context.Background(), bad, Options{Boards: 1}); !errors.Is(err, core.ErrInvalidPreset) {
		t.Fatalf("error = %v, want ErrInvalidPreset", err)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	p, _ := core.LookupPreset("normal")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, p, Options{Boards: 1000, Workers: 2}); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestSummarize(t *testing.T) {
	p, _ := core.LookupPreset("normal")
	results := []Result{
		{Seed: 1, Opening: 10, ThreeBV: 20},
		{Seed: 2, Opening: 71, ThreeBV: 1, Won: true},
		{Seed: 3, Opening: 4, ThreeBV: 30},
	}
	s := Summarize(p, results, 2)
	if s.Boards != 3 || s.InstantWins != 1 {
		t.Fatalf("summary counts %+v", s)
	}
	if s.MinThreeBV != 1 || s.MaxThreeBV != 30 || s.MeanThreeBV != 17 {
		t.Fatalf("3bv stats min=%d max=%d mean=%v", s.MinThreeBV, s.MaxThreeBV, s.MeanThreeBV)
	}
	if s.MeanOpening != 85.0/3 {
		t.Fatalf("mean opening = %v", s.MeanOpening)
	}
	if len(s.Top) != 2 || s.Top[0].Seed != 3 || s.Top[1].Seed != 1 {
		t.Fatalf("top = %+v", s.Top)
	}
	if empty := Summarize(p, nil, 5); empty.MinThreeBV != 0 || empty.Top != nil {
		t.Fatalf("empty summary %+v", empty)
	}
}
