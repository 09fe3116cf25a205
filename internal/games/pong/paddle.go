package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a player's bat. Position is its center; Corner is the
// top-left point used for drawing and is refreshed every tick.
type Paddle struct {
	Position core.Vec2
	Size     core.Vec2
	Corner   core.Vec2
	Color    core.Color
	UpKey    core.Key
	DownKey  core.Key
	Speed    float64
	Score    int
}

// UpdateCorner recomputes Corner from Position and Size.
func (p *Paddle) UpdateCorner() {
	p.Corner = p.Position.Sub(p.Size.Half())
}

// Top returns the y-coordinate of the top edge.
func (p *Paddle) Top() float64 { return p.Position.Y - p.Size.Y/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (p *Paddle) Bottom() float64 { return p.Position.Y + p.Size.Y/2 }
