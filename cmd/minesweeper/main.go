//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"minesweeper/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	preset, err := cfg.Resolve()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	session := app.NewSession(preset, cfg.Seed, logger)
	logger.WithField("seed", session.Seed()).Info("starting")
	game := app.New(session, logger)

	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.WithError(err).Fatal("game exited")
	}
}
