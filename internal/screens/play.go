package screens

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Play hosts the simulation. It keeps running every frame it is the stack
// top; while Pause sits above it, it is only drawn.
type Play struct {
	stack  Transitions
	host   core.Host
	cfg    core.RuntimeConfig
	logger *log.Logger

	sim   *pong.Simulation
	debug bool
}

// NewPlay creates the game screen. The round itself is built on Load.
func NewPlay(stack Transitions, host core.Host, cfg core.RuntimeConfig, logger *log.Logger) *Play {
	return &Play{
		stack:  stack,
		host:   host,
		cfg:    cfg,
		logger: logger.WithPrefix("play"),
	}
}

// Load starts a fresh round sized to the host window.
func (p *Play) Load() {
	p.sim = pong.New(p.cfg, p.host.WindowSize())
	p.logger.Debug("round started", "window", p.host.WindowSize())
}

// Unload implements state.State.
func (p *Play) Unload() {}

// Update handles the screen toggles and pause, then steps the simulation.
func (p *Play) Update(in core.Input) {
	if in.KeyPressed(core.KeyFullscreen) {
		p.host.ToggleFullscreen()
	}
	if in.KeyPressed(core.KeyDebug) {
		p.debug = !p.debug
	}
	if in.KeyPressed(core.KeyPause) {
		p.stack.Push(NamePause)
	}

	if scored := p.sim.Step(in); scored != pong.SideNone {
		p.logger.Debug("point",
			"side", scored,
			"left", p.sim.Left.Score,
			"right", p.sim.Right.Score,
		)
	}
}

// Draw renders paddles, ball, scores and the optional debug markers.
func (p *Play) Draw(dst core.Canvas) {
	w := p.host.WindowSize()
	s := p.sim
	size := textSize(p.cfg)

	dst.Clear(core.ColorBlack)

	dst.DrawRect(s.Left.Corner, s.Left.Size, s.Left.Color)
	dst.DrawRect(s.Right.Corner, s.Right.Size, s.Right.Color)
	dst.DrawCircle(s.Ball.Position, s.Ball.Radius, s.Ball.Color)

	dst.DrawText(fmt.Sprintf("%d", s.Left.Score), core.V(w.X/4, w.Y/12), size, core.ColorWhite)
	dst.DrawText(fmt.Sprintf("%d", s.Right.Score), core.V(w.X*3/4, w.Y/12), size, core.ColorWhite)

	if p.debug {
		p.drawDebug(dst)
	}
}

func (p *Play) drawDebug(dst core.Canvas) {
	s := p.sim
	r := float64(p.cfg.BaseUnit) / 20

	for _, pad := range []*pong.Paddle{&s.Left, &s.Right} {
		dst.DrawCircle(pad.Corner, r, core.ColorGreen)
		dst.DrawCircle(pad.Position, r, core.ColorYellow)
	}
	dst.DrawCircle(s.Ball.Position, r, core.ColorYellow)

	snap := s.Snapshot()
	dst.DrawText(fmt.Sprintf("tick %d  state %016x", snap.Tick, snap.Hash()), core.V(r, r), textSize(p.cfg)/2, core.ColorGray)
}
