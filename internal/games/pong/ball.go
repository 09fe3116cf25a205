package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Ball is the moving circle. Direction is meant to be unit length but is
// never renormalised after a bounce.
type Ball struct {
	Position  core.Vec2
	Direction core.Vec2
	Radius    float64
	Speed     float64
	Color     core.Color
}

// Left returns the x-coordinate of the leftmost point.
func (b *Ball) Left() float64 { return b.Position.X - b.Radius }

// Right returns the x-coordinate of the rightmost point.
func (b *Ball) Right() float64 { return b.Position.X + b.Radius }

// Top returns the y-coordinate of the topmost point.
func (b *Ball) Top() float64 { return b.Position.Y - b.Radius }

// Bottom returns the y-coordinate of the lowest point.
func (b *Ball) Bottom() float64 { return b.Position.Y + b.Radius }
