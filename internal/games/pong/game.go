// Package pong implements the two-paddle simulation: paddle movement with a
// soft boundary clamp, ball integration, scoring, wall reflection and
// paddle collision.
//
// Several rules are deliberately loose and are part of how the game plays:
// the ball direction is never renormalised or reset after a score, the
// paddle clamp is a single corrective step, and the paddle hit zone is four
// paddle widths wide with no positional push-out.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Starting direction of the ball.
const (
	StartDirX = 0.707
	StartDirY = 0.707
)

// Geometry holds entity proportions derived from the base unit.
type Geometry struct {
	BallRadius    float64
	BallSpeed     float64
	PaddleSize    core.Vec2
	PaddleSpeed   float64
	PaddleOffsetX float64 // distance of each paddle center from its side
}

// NewGeometry derives entity sizes from the base unit.
// A unit of 120 gives a 30px ball radius, 30x300 paddles moving 10px per
// tick and a ball moving 5px per tick.
func NewGeometry(unit int) Geometry {
	u := float64(unit)
	return Geometry{
		BallRadius:    u / 4,
		BallSpeed:     u / 24,
		PaddleSize:    core.V(u/4, u*2.5),
		PaddleSpeed:   u / 12,
		PaddleOffsetX: u / 4,
	}
}

// Side identifies a paddle.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Simulation is the per-tick physics of one round.
type Simulation struct {
	Ball   Ball
	Left   Paddle
	Right  Paddle
	Width  float64
	Height float64

	geometry Geometry
	tick     uint64
}

// New creates a simulation for a window of the given size, with scores at
// zero and every entity at its starting position.
func New(cfg core.RuntimeConfig, window core.Vec2) *Simulation {
	g := NewGeometry(cfg.BaseUnit)
	s := &Simulation{
		Ball: Ball{
			Direction: core.V(StartDirX, StartDirY),
			Radius:    g.BallRadius,
			Speed:     g.BallSpeed,
			Color:     cfg.BallColor,
		},
		Left: Paddle{
			Size:    g.PaddleSize,
			Color:   cfg.LeftColor,
			UpKey:   core.KeyW,
			DownKey: core.KeyS,
			Speed:   g.PaddleSpeed,
		},
		Right: Paddle{
			Size:    g.PaddleSize,
			Color:   cfg.RightColor,
			UpKey:   core.KeyUp,
			DownKey: core.KeyDown,
			Speed:   g.PaddleSpeed,
		},
		Width:    window.X,
		Height:   window.Y,
		geometry: g,
	}
	s.ResetPositions()
	s.UpdateCorners()
	return s
}

// Step advances the simulation by one frame and reports which side scored,
// if any.
func (s *Simulation) Step(in core.Input) Side {
	s.tick++

	s.MovePaddle(&s.Left, in)
	s.MovePaddle(&s.Right, in)
	s.MoveBall()
	scored := s.CheckScore()
	s.ReflectWalls()
	s.UpdateCorners()
	s.Collide(&s.Left)
	s.Collide(&s.Right)

	return scored
}

// MovePaddle moves p by one speed step per held key, then nudges it back
// by one more step if an edge left the window. A fast paddle can still
// overshoot by up to its speed until the next tick.
func (s *Simulation) MovePaddle(p *Paddle, in core.Input) {
	if in.KeyDown(p.UpKey) {
		p.Position.Y -= p.Speed
	}
	if in.KeyDown(p.DownKey) {
		p.Position.Y += p.Speed
	}

	if p.Top() < 0 {
		p.Position.Y += p.Speed
	}
	if p.Bottom() > s.Height {
		p.Position.Y -= p.Speed
	}
}

// MoveBall advances the ball by direction * speed.
func (s *Simulation) MoveBall() {
	s.Ball.Position = s.Ball.Position.Add(s.Ball.Direction.Scale(s.Ball.Speed))
}

// CheckScore awards a point when the ball leaves through a side and resets
// positions. The ball keeps its direction.
func (s *Simulation) CheckScore() Side {
	switch {
	case s.Ball.Left() < 0:
		s.Right.Score++
		s.ResetPositions()
		return SideRight
	case s.Ball.Right() > s.Width:
		s.Left.Score++
		s.ResetPositions()
		return SideLeft
	}
	return SideNone
}

// ReflectWalls negates the vertical direction when the ball crosses the
// top or bottom of the window. Both checks run independently.
func (s *Simulation) ReflectWalls() {
	if s.Ball.Top() < 0 {
		s.Ball.Direction.Y = -s.Ball.Direction.Y
	}
	if s.Ball.Bottom() > s.Height {
		s.Ball.Direction.Y = -s.Ball.Direction.Y
	}
}

// UpdateCorners refreshes both paddles' cached corners.
func (s *Simulation) UpdateCorners() {
	s.Left.UpdateCorner()
	s.Right.UpdateCorner()
}

// Collide negates the horizontal direction when the ball center lies
// strictly inside p's hit band: p.X ± width*2 by p.Y ± height/2.
// The ball is not pushed out, so it can flip again on the next tick.
func (s *Simulation) Collide(p *Paddle) bool {
	c := s.Ball.Position
	inX := c.X > p.Position.X-p.Size.X*2 && c.X < p.Position.X+p.Size.X*2
	inY := c.Y > p.Position.Y-p.Size.Y/2 && c.Y < p.Position.Y+p.Size.Y/2
	if !inX || !inY {
		return false
	}
	s.Ball.Direction.X = -s.Ball.Direction.X
	return true
}

// ResetPositions centers the ball and returns both paddles to their
// starting spots. Direction and scores are untouched.
func (s *Simulation) ResetPositions() {
	s.Ball.Position = core.V(s.Width/2, s.Height/2)
	s.Left.Position = core.V(s.geometry.PaddleOffsetX, s.Height/2)
	s.Right.Position = core.V(s.Width-s.geometry.PaddleOffsetX, s.Height/2)
}
