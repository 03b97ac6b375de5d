package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"minesweeper/internal/app"
	"minesweeper/internal/bench"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	boards := flag.Int("boards", 10000, "boards to play per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "hardest boards to list")
	flag.Parse()

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	preset, err := cfg.Resolve()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.WithFields(logrus.Fields{
		"preset":  preset.Name,
		"boards":  *boards,
		"workers": *workers,
		"seed":    seed,
	}).Info("sweeping")

	start := time.Now()
	results, err := bench.Run(ctx, preset, bench.Options{Boards: *boards, BaseSeed: seed, Workers: *workers})
	if err != nil {
		log.WithError(err).Fatal("sweep failed")
	}
	s := bench.Summarize(preset, results, *top)
	elapsed := time.Since(start)

	fmt.Printf("%s %dx%d/%d: %d boards in %s\n", preset.Title(), preset.Rows, preset.Cols, preset.Mines, s.Boards, elapsed.Round(time.Millisecond))
	fmt.Printf("opening: mean %.1f cells, instant wins %d (%.2f%%)\n", s.MeanOpening, s.InstantWins, 100*float64(s.InstantWins)/float64(s.Boards))
	fmt.Printf("3BV: mean %.2f min %d max %d\n", s.MeanThreeBV, s.MinThreeBV, s.MaxThreeBV)

	fmt.Printf("\nTop %d boards by 3BV:\n", len(s.Top))
	for i, r := range s.Top {
		fmt.Printf("%2d) seed=%d 3bv=%d opening=%d (%.1f%%)\n", i+1, r.Seed, r.ThreeBV, r.Opening, 100*r.Revealed)
	}
}
