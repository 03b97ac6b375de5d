package app

import (
	"time"

	"minesweeper/internal/board"
	"minesweeper/internal/core"
	pkgcore "minesweeper/pkg/core"

	"github.com/sirupsen/logrus"
)

// Session ties a board to its preset, play clock and logger. Both front-ends
// drive the game through it from a single goroutine.
type Session struct {
	preset core.Preset
	rng    *pkgcore.RNG
	board  *board.Board
	clock  core.Stopwatch
	log    logrus.FieldLogger
	games  int
}

// NewSession starts a game of preset. A zero seed picks one from the clock.
func NewSession(preset core.Preset, seed int64, log logrus.FieldLogger) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	rng := pkgcore.NewRNG(seed)
	s := &Session{
		preset: preset,
		rng:    rng,
		board:  board.New(preset.Rows, preset.Cols, preset.Mines, rng),
		log:    log,
	}
	s.logStart()
	return s
}

// Start switches to preset, resizing the board.
func (s *Session) Start(preset core.Preset) {
	s.preset = preset
	s.board.Init(preset.Rows, preset.Cols, preset.Mines)
	s.clock.Reset()
	s.logStart()
}

// Restart begins a new game with the current preset.
func (s *Session) Restart() {
	s.board.NewGame()
	s.clock.Reset()
	s.logStart()
}

// Click forwards a grid click to the board and logs phase transitions.
func (s *Session) Click(row, col int, primary bool) {
	before := s.board.Phase()
	s.board.HandleClick(row, col, primary)
	after := s.board.Phase()
	if before == after {
		return
	}

	switch after {
	case board.Active:
		s.clock.Start()
		s.fields().WithField("bbbv", s.board.ThreeBV()).Debug("mines placed")
	case board.Won:
		s.clock.Stop()
		s.fields().WithField("bbbv", s.board.ThreeBV()).Info("game won")
	case board.Lost:
		s.clock.Stop()
		r, c, _ := s.board.Exploded()
		s.fields().WithFields(logrus.Fields{"row": r, "col": c}).Info("game lost")
	}
}

// Tick advances the play clock by dt. The clock only runs while the board is
// active.
func (s *Session) Tick(dt time.Duration) {
	if s.board.Phase() != board.Active {
		s.clock.Stop()
		return
	}
	s.clock.Advance(dt)
}

// Board exposes the underlying board for rendering.
func (s *Session) Board() *board.Board { return s.board }

// Preset returns the current difficulty.
func (s *Session) Preset() core.Preset { return s.preset }

// Seed returns the seed the session's generator was created with.
func (s *Session) Seed() int64 { return s.rng.Seed() }

// Elapsed returns the time played in the current game.
func (s *Session) Elapsed() time.Duration { return s.clock.Elapsed() }

// Games returns how many games have been started.
func (s *Session) Games() int { return s.games }

func (s *Session) logStart() {
	s.games++
	s.log.WithFields(logrus.Fields{
		"preset": s.preset.Name,
		"rows":   s.preset.Rows,
		"cols":   s.preset.Cols,
		"mines":  s.preset.Mines,
		"game":   s.games,
	}).Info("new game")
}

func (s *Session) fields() logrus.FieldLogger {
	return s.log.WithFields(logrus.Fields{
		"preset":  s.preset.Name,
		"game":    s.games,
		"elapsed": core.FormatClock(s.clock.Elapsed()),
	})
}
