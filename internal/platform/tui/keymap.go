package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the fixed terminal bindings.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Fullscreen key.Binding
	Debug      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the bindings. They are not configurable.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w/s", "left paddle"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "right paddle, menu"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f3", "`"),
			key.WithHelp("f3", "debug"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.RightUp, k.Confirm, k.Pause, k.Fullscreen, k.Debug, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.RightUp, k.Confirm},
		{k.Pause, k.Fullscreen, k.Debug, k.Screenshot, k.Quit},
	}
}

// MapKey translates a key message to the game key it stands for.
// Returns KeyNone for unbound keys; isQuit reports the force-quit binding.
func (k KeyMap) MapKey(msg tea.KeyMsg) (gameKey core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyNone, true
	case key.Matches(msg, k.LeftUp):
		return core.KeyW, false
	case key.Matches(msg, k.LeftDown):
		return core.KeyS, false
	case key.Matches(msg, k.RightUp):
		return core.KeyUp, false
	case key.Matches(msg, k.RightDown):
		return core.KeyDown, false
	case key.Matches(msg, k.Confirm):
		return core.KeyEnter, false
	case key.Matches(msg, k.Pause):
		return core.KeyPause, false
	case key.Matches(msg, k.Fullscreen):
		return core.KeyFullscreen, false
	case key.Matches(msg, k.Debug):
		return core.KeyDebug, false
	}
	return core.KeyNone, false
}
