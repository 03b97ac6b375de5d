//go:build ebiten

package app

import (
	"minesweeper/internal/board"
	"minesweeper/internal/core"
	"minesweeper/internal/render"
	"minesweeper/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

type screen int

const (
	screenMenu screen = iota
	screenPlaying
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	log     logrus.FieldLogger
	screen  screen
	layout  ui.Layout

	painter *render.BoardPainter
	hud     *ui.HUD
	menu    *ui.Menu
	banner  *ui.Banner
	overlay *ui.Overlay

	hoverQuestion bool
}

// New constructs a Game that opens on the difficulty menu.
func New(session *Session, log logrus.FieldLogger) *Game {
	painter := render.NewBoardPainter()
	banner := ui.NewBanner()
	g := &Game{
		session: session,
		log:     log,
		painter: painter,
		hud:     ui.NewHUD(painter),
		menu:    ui.NewMenu(core.Presets(), painter),
		banner:  banner,
		overlay: ui.NewOverlay(banner, painter),
	}
	g.showMenu()
	return g
}

func (g *Game) showMenu() {
	g.screen = screenMenu
	g.log.Debug("showing menu")
	ebiten.SetWindowTitle("Minesweeper")
	ebiten.SetWindowSize(g.menu.Size())
}

func (g *Game) play(p core.Preset) {
	g.session.Start(p)
	g.layout = ui.NewLayout(p.Size())
	g.screen = screenPlaying
	ebiten.SetWindowTitle("Minesweeper - " + p.Title())
	ebiten.SetWindowSize(g.layout.WindowSize())
}

// Update handles per-frame input and advances the play clock.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	if g.screen == screenMenu {
		g.menu.Hover(x, y)
		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return nil
		}
		p, exit, ok := g.menu.Pick(x, y)
		switch {
		case !ok:
		case exit:
			return ebiten.Termination
		default:
			g.play(p)
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.showMenu()
		return nil
	}

	b := g.session.Board()
	g.hoverQuestion = false
	if row, col, ok := g.layout.CellAt(x, y); ok {
		g.hoverQuestion = b.State(row, col) == board.Questioned
	}

	primary := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	secondary := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	switch {
	case primary && ui.FaceHit(g.layout, x, y):
		if b.Over() {
			g.session.Restart()
		}
	case primary || secondary:
		if row, col, ok := g.layout.CellAt(x, y); ok {
			g.session.Click(row, col, primary)
		}
	}

	dt := core.FrameDelta(ebiten.TPS())
	g.session.Tick(dt)
	g.banner.Update(b.Phase(), dt)
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == screenMenu {
		g.menu.Draw(screen)
		return
	}
	screen.Fill(render.Background)
	b := g.session.Board()
	face := render.FaceFor(b.Phase(), g.hoverQuestion)
	g.hud.Draw(screen, g.layout, b.FlagsRemaining(), face, core.FormatClock(g.session.Elapsed()))
	g.painter.Draw(screen, b, g.layout.Cell)
	g.overlay.Draw(screen, g.layout)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.screen == screenMenu {
		return g.menu.Size()
	}
	return g.layout.WindowSize()
}
