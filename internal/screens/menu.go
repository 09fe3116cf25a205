package screens

import "github.com/vovakirdan/tui-pong/internal/core"

type menuOption int

const (
	menuFirst menuOption = iota
	menuPlay
	menuQuit
	menuLast
)

// target is the state a confirmed option pushes.
func (o menuOption) target() string {
	switch o {
	case menuQuit:
		return NameQuit
	default:
		return NamePlay
	}
}

var menuLabels = []string{"Play", "Quit"}

// Menu is the title screen. Confirming replaces it with the screen named
// after the selection.
type Menu struct {
	stack    Transitions
	host     core.Host
	cfg      core.RuntimeConfig
	selector Selector[menuOption]
}

// NewMenu creates the title screen.
func NewMenu(stack Transitions, host core.Host, cfg core.RuntimeConfig) *Menu {
	return &Menu{
		stack:    stack,
		host:     host,
		cfg:      cfg,
		selector: NewSelector(menuFirst, menuLast),
	}
}

// Load puts the cursor back on Play.
func (m *Menu) Load() {
	m.selector.Reset(menuPlay)
}

// Unload implements state.State.
func (m *Menu) Unload() {}

// Update moves the cursor and handles confirm.
func (m *Menu) Update(in core.Input) {
	if in.KeyPressed(core.KeyDown) {
		m.selector.Next()
	}
	if in.KeyPressed(core.KeyUp) {
		m.selector.Prev()
	}
	if in.KeyPressed(core.KeyEnter) {
		m.stack.Pop()
		m.stack.Push(m.selector.Value().target())
	}
}

// Draw renders the title and options.
func (m *Menu) Draw(dst core.Canvas) {
	w := m.host.WindowSize()
	size := textSize(m.cfg)

	dst.Clear(core.ColorBlack)
	dst.DrawText("Pong", core.V(w.X*0.42, w.Y/4), size*2, core.ColorWhite)
	drawOptions(dst, menuLabels, int(m.selector.Value()-menuPlay), core.V(w.X*0.42, w.Y/2), size)
}
