package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Palette maps core.Color to lipgloss styles bound to one renderer.
// Over SSH each session has its own renderer, so styles follow the
// client's terminal rather than the server's.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette creates the styles for r. A nil r uses the process's
// default renderer.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Palette{styles: map[core.Color]lipgloss.Style{
		core.ColorBlack:  r.NewStyle(),
		core.ColorWhite:  r.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorBlue:   r.NewStyle().Foreground(lipgloss.Color("12")),
		core.ColorRed:    r.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorGreen:  r.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorYellow: r.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorGray:   r.NewStyle().Foreground(lipgloss.Color("240")),
	}}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p.styles[startColor]
			if !ok {
				style = p.styles[core.ColorBlack]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// newHelp creates the footer with its default styles rebound to r.
func newHelp(r *lipgloss.Renderer) help.Model {
	h := help.New()
	if r == nil {
		return h
	}
	rebind := func(s lipgloss.Style) lipgloss.Style {
		return r.NewStyle().Inherit(s)
	}
	h.Styles.Ellipsis = rebind(h.Styles.Ellipsis)
	h.Styles.ShortKey = rebind(h.Styles.ShortKey)
	h.Styles.ShortDesc = rebind(h.Styles.ShortDesc)
	h.Styles.ShortSeparator = rebind(h.Styles.ShortSeparator)
	h.Styles.FullKey = rebind(h.Styles.FullKey)
	h.Styles.FullDesc = rebind(h.Styles.FullDesc)
	h.Styles.FullSeparator = rebind(h.Styles.FullSeparator)
	return h
}
