package screens

import "github.com/vovakirdan/tui-pong/internal/core"

// Quit asks the host to stop the main loop as soon as it is pushed.
type Quit struct {
	host core.Host
}

// NewQuit creates the quit trigger.
func NewQuit(host core.Host) *Quit {
	return &Quit{host: host}
}

// Load requests termination.
func (q *Quit) Load() {
	q.host.RequestQuit()
}

func (q *Quit) Unload()           {}
func (q *Quit) Update(core.Input) {}
func (q *Quit) Draw(core.Canvas)  {}
