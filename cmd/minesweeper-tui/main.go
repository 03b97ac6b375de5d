package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"minesweeper/internal/app"
	"minesweeper/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	preset, err := cfg.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := app.NewSession(preset, cfg.Seed, log)
	if err := tui.Run(ctx, session, cfg.TPS); err != nil {
		log.WithError(err).Error("terminal front-end failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
