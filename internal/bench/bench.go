// Package bench measures how a difficulty plays out on many seeded boards:
// the size of the opening revealed by the first click and the 3BV of the
// resulting layout.
package bench

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"minesweeper/internal/board"
	"minesweeper/internal/core"
	pkgcore "minesweeper/pkg/core"

	"golang.org/x/sync/errgroup"
)

// Result describes one board after its first click.
type Result struct {
	Seed     int64
	Opening  int
	ThreeBV  int
	Won      bool
	Revealed float64
}

// Summary aggregates a run.
type Summary struct {
	Preset      core.Preset
	Boards      int
	InstantWins int
	MeanOpening float64
	MeanThreeBV float64
	MinThreeBV  int
	MaxThreeBV  int
	Top         []Result
}

// Options controls a run.
type Options struct {
	Boards   int
	BaseSeed int64
	Workers  int
	Top      int
}

// Play lays a board for seed and makes the first click in its centre.
func Play(p core.Preset, seed int64) Result {
	b := board.New(p.Rows, p.Cols, p.Mines, pkgcore.NewRNG(seed))
	b.HandleClick(p.Rows/2, p.Cols/2, true)
	safe := p.Rows*p.Cols - p.Mines
	res := Result{
		Seed:    seed,
		Opening: b.RevealedCount(),
		ThreeBV: b.ThreeBV(),
		Won:     b.Won(),
	}
	if safe > 0 {
		res.Revealed = float64(res.Opening) / float64(safe)
	}
	return res
}

// Run plays opts.Boards boards of p with consecutive seeds on a bounded pool
// of workers. Results are returned in seed order.
func Run(ctx context.Context, p core.Preset, opts Options) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if opts.Boards <= 0 {
		return nil, fmt.Errorf("bench: boards must be positive, got %d", opts.Boards)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Boards)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Play(p, opts.BaseSeed+int64(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize aggregates results, keeping the top boards by 3BV.
func Summarize(p core.Preset, results []Result, top int) Summary {
	s := Summary{Preset: p, Boards: len(results), MinThreeBV: math.MaxInt}
	if len(results) == 0 {
		s.MinThreeBV = 0
		return s
	}
	var opening, bbbv int
	for _, r := range results {
		opening += r.Opening
		bbbv += r.ThreeBV
		if r.Won {
			s.InstantWins++
		}
		s.MinThreeBV = min(s.MinThreeBV, r.ThreeBV)
		s.MaxThreeBV = max(s.MaxThreeBV, r.ThreeBV)
	}
	s.MeanOpening = float64(opening) / float64(len(results))
	s.MeanThreeBV = float64(bbbv) / float64(len(results))

	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ThreeBV > sorted[j].ThreeBV })
	if top > len(sorted) {
		top = len(sorted)
	}
	if top > 0 {
		s.Top = sorted[:top]
	}
	return s
}
