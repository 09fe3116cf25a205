package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/screens"
	"github.com/vovakirdan/tui-pong/internal/state"
)

// Model is the Bubble Tea model running one game: a state manager with the
// four screens installed, fed by terminal keys and paced by ticks.
type Model struct {
	manager *state.Manager
	host    *core.Window
	screen  *core.Screen
	canvas  *CellCanvas
	input   *heldKeys
	keys    KeyMap
	help    help.Model
	palette Palette
	config  core.RuntimeConfig
	logger  *log.Logger

	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a terminal of width x height cells.
// renderer styles the output; nil means the local terminal.
func NewModel(cfg core.RuntimeConfig, width, height int, renderer *lipgloss.Renderer, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	host := core.NewWindow(cfg)
	manager := state.NewManager(logger)
	screens.Install(manager, host, cfg, logger)

	screen := core.NewScreen(width, height)
	return Model{
		manager: manager,
		host:    host,
		screen:  screen,
		canvas:  NewCellCanvas(screen, host.WindowSize()),
		input:   newHeldKeys(holdWindow(cfg.TickRate)),
		keys:    DefaultKeyMap(),
		help:    newHelp(renderer),
		palette: NewPalette(renderer),
		config:  cfg,
		logger:  logger,
		width:   width,
		height:  height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	k, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.press(k)
	return m, nil
}

// handleTick advances the state stack by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.manager.Update(m.input)
	m.input.endFrame()

	if m.host.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// playRows is the number of rows the game may draw on. The help footer
// takes the last row unless fullscreen is on.
func (m Model) playRows() int {
	if m.host.Fullscreen() {
		return m.height
	}
	return max(m.height-1, 0)
}

// render draws every stacked screen into the cell buffer.
func (m Model) render() {
	m.screen.Resize(m.width, m.playRows())
	m.manager.Draw(m.canvas)
}

// saveScreenshot writes the current frame as plain text under
// ~/.pong/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "err", err)
		return
	}

	m.render()
	name := fmt.Sprintf("pong_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	out := m.palette.Render(m.screen)
	if !m.host.Fullscreen() {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg core.RuntimeConfig, width, height int, logger *log.Logger) error {
	model := NewModel(cfg, width, height, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
