package screens

import "github.com/vovakirdan/tui-pong/internal/core"

type pauseOption int

const (
	pauseFirst pauseOption = iota
	pauseResume
	pauseLeave
	pauseLast
)

var pauseLabels = []string{"Resume", "Leave"}

// Pause is an overlay drawn over the game, which stays visible beneath it.
type Pause struct {
	stack    Transitions
	host     core.Host
	cfg      core.RuntimeConfig
	selector Selector[pauseOption]
}

// NewPause creates the pause overlay.
func NewPause(stack Transitions, host core.Host, cfg core.RuntimeConfig) *Pause {
	return &Pause{
		stack:    stack,
		host:     host,
		cfg:      cfg,
		selector: NewSelector(pauseFirst, pauseLast),
	}
}

// Load puts the cursor back on Resume.
func (p *Pause) Load() {
	p.selector.Reset(pauseResume)
}

// Unload implements state.State.
func (p *Pause) Unload() {}

// Update handles quick resume, navigation and confirm.
func (p *Pause) Update(in core.Input) {
	if in.KeyPressed(core.KeyPause) {
		p.stack.Pop()
		return
	}

	if in.KeyPressed(core.KeyDown) {
		p.selector.Next()
	}
	if in.KeyPressed(core.KeyUp) {
		p.selector.Prev()
	}

	if in.KeyPressed(core.KeyEnter) {
		switch p.selector.Value() {
		case pauseResume:
			p.stack.Pop()
		case pauseLeave:
			p.stack.Pop() // Pause
			p.stack.Pop() // Play
			p.stack.Push(NameMenu)
		}
	}
}

// Draw dims everything below and lists the options.
func (p *Pause) Draw(dst core.Canvas) {
	w := p.host.WindowSize()
	size := textSize(p.cfg)

	dst.DrawRect(core.V(0, 0), w, core.ColorOverlay)
	dst.DrawText("Paused", core.V(w.X*0.42, w.Y/4), size*2, core.ColorWhite)
	drawOptions(dst, pauseLabels, int(p.selector.Value()-pauseResume), core.V(w.X*0.42, w.Y/2), size)
}
