package tui

import (
	"context"
	"time"

	"minesweeper/internal/app"
	"minesweeper/internal/core"

	"github.com/rivo/tview"
)

// Run plays session in the terminal until the player quits or ctx is done.
// Clock ticks are delivered through the application's event loop so the
// session is only touched from one goroutine.
func Run(ctx context.Context, session *app.Session, tps int) error {
	tv := tview.NewApplication()
	view := NewView(session, tv.Stop)
	tv.SetRoot(view.Root(), true)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		dt := core.FrameDelta(tps)
		ticker := time.NewTicker(dt)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				tv.Stop()
				return
			case <-ticker.C:
				tv.QueueUpdateDraw(func() { view.Tick(dt) })
			}
		}
	}()

	return tv.Run()
}
