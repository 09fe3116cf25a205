package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func rendererWithProfile(p termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return r
}

func TestPaletteKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorBlue)
	s.DrawText(3, 1, "cd", core.ColorRed)

	out := NewPalette(nil).Render(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("rendered %d line breaks, want 1", n)
	}
}

func TestPaletteFollowsRendererProfile(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "ab", core.ColorBlue)

	plain := NewPalette(rendererWithProfile(termenv.Ascii)).Render(s)
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("ascii session got escape codes: %q", plain)
	}
	if plain != "ab  " {
		t.Errorf("ascii render = %q, want %q", plain, "ab  ")
	}

	colored := NewPalette(rendererWithProfile(termenv.ANSI256)).Render(s)
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("ansi256 session got no escape codes: %q", colored)
	}
}

func TestModelUsesSessionRenderer(t *testing.T) {
	plain := NewModel(core.DefaultConfig(), 40, 12, rendererWithProfile(termenv.Ascii), nil)
	colored := NewModel(core.DefaultConfig(), 40, 12, rendererWithProfile(termenv.ANSI256), nil)

	plain, _ = tick(t, plain)
	colored, _ = tick(t, colored)

	if strings.Contains(plain.View(), "\x1b[") {
		t.Error("ascii session view contains escape codes")
	}
	if !strings.Contains(colored.View(), "\x1b[") {
		t.Error("ansi256 session view is uncolored")
	}
}
