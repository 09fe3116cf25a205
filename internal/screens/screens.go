// Package screens contains the states stacked by the state manager:
// the main menu, the game itself, the pause overlay and the quit trigger.
package screens

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/state"
)

// Registered state names.
const (
	NameMenu  = "Menu"
	NamePlay  = "Play"
	NamePause = "Pause"
	NameQuit  = "Quit"
)

// Marker prefixes the selected label in menus.
const Marker = "> "

// Transitions is the part of the state manager screens use to request
// stack changes. Requests take effect on the next frame.
type Transitions interface {
	Push(name string)
	Pop()
}

// Install registers every screen with m and queues the main menu.
func Install(m *state.Manager, host core.Host, cfg core.RuntimeConfig, logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m.Register(NameMenu, NewMenu(m, host, cfg))
	m.Register(NamePlay, NewPlay(m, host, cfg, logger))
	m.Register(NamePause, NewPause(m, host, cfg))
	m.Register(NameQuit, NewQuit(host))
	m.Push(NameMenu)
}

// textSize returns the glyph height used for labels.
func textSize(cfg core.RuntimeConfig) float64 {
	return float64(cfg.BaseUnit) / 2
}

// drawOptions draws labels one per line starting at pos, prefixing the
// selected one with Marker.
func drawOptions(dst core.Canvas, labels []string, selected int, pos core.Vec2, size float64) {
	for i, label := range labels {
		text := "  " + label
		c := core.ColorGray
		if i == selected {
			text = Marker + label
			c = core.ColorWhite
		}
		dst.DrawText(text, pos.Add(core.V(0, float64(i)*size*1.5)), size, c)
	}
}
