package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// newTestCanvas maps a 32x18 world onto 16x9 cells, one cell per 2px.
func newTestCanvas() (*CellCanvas, *core.Screen) {
	screen := core.NewScreen(16, 9)
	return NewCellCanvas(screen, core.V(32, 18)), screen
}

func TestCellCanvasDrawRect(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawRect(core.V(4, 2), core.V(4, 6), core.ColorBlue)

	for y := range s.Height() {
		for x := range s.Width() {
			inside := x >= 2 && x < 4 && y >= 1 && y < 4
			cell := s.GetCell(x, y)
			if inside && (cell.Rune != FillChar || cell.Color != core.ColorBlue) {
				t.Errorf("cell (%d,%d) = %q %v, want filled blue", x, y, cell.Rune, cell.Color)
			}
			if !inside && cell.Rune != ' ' {
				t.Errorf("cell (%d,%d) = %q, want blank", x, y, cell.Rune)
			}
		}
	}
}

func TestCellCanvasTinyRectCoversOneCell(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawRect(core.V(10.2, 10.2), core.V(0.2, 0.2), core.ColorRed)

	if got := s.GetCell(5, 5); got.Rune != FillChar || got.Color != core.ColorRed {
		t.Errorf("cell (5,5) = %q %v, want filled red", got.Rune, got.Color)
	}
}

func TestCellCanvasOverlayDims(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawRect(core.V(0, 0), core.V(6, 6), core.ColorWhite)
	c.DrawRect(core.V(0, 0), core.V(32, 18), core.ColorOverlay)

	cell := s.GetCell(1, 1)
	if cell.Rune != FillChar {
		t.Errorf("overlay replaced rune with %q", cell.Rune)
	}
	if cell.Color != core.ColorGray {
		t.Errorf("overlay color = %v, want gray", cell.Color)
	}
}

func TestCellCanvasDrawCircle(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawCircle(core.V(16, 9), 4, core.ColorWhite)

	if got := s.GetCell(8, 4).Rune; got != FillChar {
		t.Errorf("center cell = %q, want %q", got, FillChar)
	}
	if got := s.GetCell(0, 0).Rune; got != ' ' {
		t.Errorf("far cell = %q, want blank", got)
	}
}

func TestCellCanvasSmallCircleIsDot(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawCircle(core.V(16, 8), 0.4, core.ColorYellow)

	if got := s.GetCell(8, 4); got.Rune != DotChar || got.Color != core.ColorYellow {
		t.Errorf("dot cell = %q %v, want yellow dot", got.Rune, got.Color)
	}
}

func TestCellCanvasDrawText(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawText("hi", core.V(8, 4), 6, core.ColorWhite)

	row := strings.Split(s.String(), "\n")[2]
	if !strings.HasPrefix(row[4:], "hi") {
		t.Errorf("row 2 = %q, want \"hi\" at column 4", row)
	}
}

func TestCellCanvasClear(t *testing.T) {
	c, s := newTestCanvas()
	c.DrawRect(core.V(0, 0), core.V(32, 18), core.ColorRed)
	c.Clear(core.ColorBlack)

	if strings.ContainsRune(s.String(), FillChar) {
		t.Error("Clear left filled cells")
	}
}
