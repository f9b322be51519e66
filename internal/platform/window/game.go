// Package window runs a cannon session in a desktop window with ebiten.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/game"
)

// Title is the window caption.
const Title = "Cannon"

// keyBindings maps ebiten keys to game keys.
var keyBindings = []struct {
	from ebiten.Key
	to   core.Key
}{
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyX, core.KeyShoot},
}

// Game adapts a session to ebiten.Game. Each Update is one tick.
type Game struct {
	session *game.Session
	queue   core.EventQueue
	config  core.RuntimeConfig
	logger  *log.Logger
}

// NewGame wraps session for the ebiten loop.
func NewGame(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	return &Game{session: session, config: cfg, logger: logger}
}

// poll collects this frame's key edges and the close request.
func (g *Game) poll() {
	if ebiten.IsWindowBeingClosed() {
		g.logger.Debug("window close requested")
		g.queue.Push(core.Terminate())
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.from) {
			g.queue.Push(core.Pressed(b.to))
		}
		if inpututil.IsKeyJustReleased(b.from) {
			g.queue.Push(core.Released(b.to))
		}
	}
}

// Update advances the session one tick.
func (g *Game) Update() error {
	g.poll()
	result := g.session.Step(g.queue.Drain())
	if result.State.Finished {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the session onto the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(newImageSurface(screen))
}

// Layout keeps the world resolution regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.config.WorldW, g.config.WorldH
}

// Run opens the window and blocks until the session finishes or the
// window is closed.
func Run(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.WorldW, cfg.WorldH)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting window frontend", "width", cfg.WorldW, "height", cfg.WorldH, "tps", cfg.TickRate)

	err := ebiten.RunGame(NewGame(session, cfg, logger))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window frontend: %w", err)
	}

	state := session.State()
	logger.Info("session finished", "score", state.Score, "ticks", session.Tick())
	return nil
}
