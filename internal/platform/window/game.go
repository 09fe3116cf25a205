// Package window runs the game in a desktop window with ebiten.
package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/screens"
	"github.com/vovakirdan/tui-pong/internal/state"
)

// Game adapts the state manager to ebiten's game loop.
type Game struct {
	manager *state.Manager
	host    *core.Window
	cfg     core.RuntimeConfig
	input   keyboard
}

// NewGame creates a game with every screen installed and the menu queued.
func NewGame(cfg core.RuntimeConfig, logger *log.Logger) *Game {
	host := core.NewWindow(cfg)
	manager := state.NewManager(logger)
	screens.Install(manager, host, cfg, logger)
	return &Game{manager: manager, host: host, cfg: cfg}
}

// Update advances one frame. It ends the loop once a screen requested quit.
func (g *Game) Update() error {
	g.manager.Update(g.input)

	if g.host.Fullscreen() != ebiten.IsFullscreen() {
		ebiten.SetFullscreen(g.host.Fullscreen())
	}
	if g.host.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders every stacked screen, bottom first.
func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(imageCanvas{dst: screen})
}

// Layout fixes the logical resolution to the configured window size;
// ebiten scales it to the real window.
func (g *Game) Layout(_, _ int) (int, int) {
	size := g.host.WindowSize()
	return int(size.X), int(size.Y)
}

// Run opens the window and blocks until the game quits or the window
// is closed.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	size := cfg.WindowSize()
	ebiten.SetWindowSize(int(size.X), int(size.Y))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("opening window", "size", size, "tps", cfg.TickRate)
	return ebiten.RunGame(NewGame(cfg, logger))
}
