package tui

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Glyphs used when rasterising shapes into cells.
const (
	FillChar = '█'
	DotChar  = '●'
)

// CellCanvas implements core.Canvas on a terminal cell buffer. Draw calls
// arrive in window pixels and are scaled to the buffer size, so the whole
// window always fits the terminal.
type CellCanvas struct {
	screen *core.Screen
	world  core.Vec2
}

// NewCellCanvas creates a canvas mapping a world of the given pixel size
// onto screen.
func NewCellCanvas(screen *core.Screen, world core.Vec2) *CellCanvas {
	return &CellCanvas{screen: screen, world: world}
}

func (c *CellCanvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.world.X, float64(c.screen.Height()) / c.world.Y
}

// Clear implements core.Canvas. Terminal backgrounds are not painted.
func (c *CellCanvas) Clear(core.Color) {
	c.screen.Clear()
}

// DrawRect implements core.Canvas. Translucent colors dim the covered
// cells instead of replacing them. Every rectangle covers at least one cell.
func (c *CellCanvas) DrawRect(pos, size core.Vec2, col core.Color) {
	sx, sy := c.scale()
	x0 := int(math.Floor(pos.X * sx))
	y0 := int(math.Floor(pos.Y * sy))
	x1 := max(int(math.Ceil((pos.X+size.X)*sx)), x0+1)
	y1 := max(int(math.Ceil((pos.Y+size.Y)*sy)), y0+1)

	if col.Translucent() {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.screen.Dim(x, y)
			}
		}
		return
	}
	c.screen.FillArea(x0, y0, x1, y1, FillChar, col)
}

// DrawCircle implements core.Canvas. Cells whose center lies inside the
// circle are filled; a circle too small to cover any cell center becomes a
// single dot.
func (c *CellCanvas) DrawCircle(center core.Vec2, radius float64, col core.Color) {
	sx, sy := c.scale()
	x0 := int(math.Floor((center.X - radius) * sx))
	x1 := int(math.Ceil((center.X + radius) * sx))
	y0 := int(math.Floor((center.Y - radius) * sy))
	y1 := int(math.Ceil((center.Y + radius) * sy))

	filled := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			if math.Hypot(px-center.X, py-center.Y) <= radius {
				c.screen.Set(x, y, FillChar, col)
				filled = true
			}
		}
	}
	if !filled {
		c.screen.Set(int(center.X*sx), int(center.Y*sy), DotChar, col)
	}
}

// DrawText implements core.Canvas. Terminal glyphs have a fixed size, so
// size is ignored.
func (c *CellCanvas) DrawText(text string, pos core.Vec2, _ float64, col core.Color) {
	sx, sy := c.scale()
	c.screen.DrawText(int(pos.X*sx), int(pos.Y*sy), text, col)
}
