package core

import (
	"fmt"
	"time"
)

// Stopwatch accumulates play time from frame deltas supplied by the caller.
// It never reads the wall clock, so callers decide what a frame is worth.
type Stopwatch struct {
	elapsed time.Duration
	running bool
}

// Start resumes accumulation.
func (s *Stopwatch) Start() { s.running = true }

// Stop pauses accumulation, keeping the elapsed time.
func (s *Stopwatch) Stop() { s.running = false }

// Reset stops the stopwatch and clears the elapsed time.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.running = false
}

// Running reports whether Advance currently has an effect.
func (s *Stopwatch) Running() bool { return s.running }

// Advance adds delta to the elapsed time while running. Negative deltas are
// ignored.
func (s *Stopwatch) Advance(delta time.Duration) {
	if !s.running || delta <= 0 {
		return
	}
	s.elapsed += delta
}

// Elapsed returns the accumulated time.
func (s *Stopwatch) Elapsed() time.Duration { return s.elapsed }

// FormatClock renders d as MM:SS, truncating fractional seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FrameDelta is the duration of one tick at the given ticks-per-second rate.
func FrameDelta(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
