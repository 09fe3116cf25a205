// Package state implements the screen stack that decides which screen
// receives input and in which order screens are drawn.
//
// Every mutation (Register, Push, Pop) is queued and applied at the start
// of the next Update, so a screen can request its own replacement from
// inside its Update without the stack changing under it.
package state

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// State is one screen of the stack.
type State interface {
	// Load is called every time the state is pushed.
	Load()

	// Unload is called when a state that is already on the stack is
	// pushed again, before it is re-appended.
	Unload()

	// Update advances the state by one frame. Only the stack top is updated.
	Update(in core.Input)

	// Draw renders the state. Every stack entry is drawn, bottom to top.
	Draw(dst core.Canvas)
}

type command func(m *Manager)

type entry struct {
	name  string
	state State
}

// Manager owns the registered states, the active stack and the queue of
// pending mutations. It is not safe for concurrent use; hosts drive it
// from a single loop.
type Manager struct {
	registry map[string]State
	stack    []entry
	queue    []command
	logger   *log.Logger
}

// NewManager creates an empty manager. A nil logger discards output.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		registry: make(map[string]State),
		logger:   logger.WithPrefix("state"),
	}
}

// Register queues binding name to s, replacing any previous binding.
// Load is not called until the state is pushed.
func (m *Manager) Register(name string, s State) {
	m.queue = append(m.queue, func(m *Manager) {
		m.registry[name] = s
		m.logger.Debug("registered", "name", name)
	})
}

// Push queues putting the state registered as name on top of the stack.
// Pushing an unregistered name panics when the queue is flushed.
func (m *Manager) Push(name string) {
	m.queue = append(m.queue, func(m *Manager) {
		s, ok := m.registry[name]
		if !ok {
			panic(fmt.Sprintf("state: push of unregistered state %q", name))
		}
		if m.contains(s) {
			s.Unload()
		}
		m.stack = append(m.stack, entry{name: name, state: s})
		s.Load()
		m.logger.Debug("pushed", "name", name, "depth", len(m.stack))
	})
}

// Pop queues removing the top of the stack.
// Popping an empty stack panics when the queue is flushed.
func (m *Manager) Pop() {
	m.queue = append(m.queue, func(m *Manager) {
		if len(m.stack) == 0 {
			panic("state: pop of empty stack")
		}
		top := m.stack[len(m.stack)-1]
		m.stack[len(m.stack)-1] = entry{}
		m.stack = m.stack[:len(m.stack)-1]
		m.logger.Debug("popped", "name", top.name, "depth", len(m.stack))
	})
}

// Update applies all queued commands in submission order, then updates the
// stack top. Commands queued during this call wait for the next Update.
func (m *Manager) Update(in core.Input) {
	m.Flush()
	if top := m.Top(); top != nil {
		top.Update(in)
	}
}

// Flush applies queued commands without updating any state.
func (m *Manager) Flush() {
	pending := m.queue
	m.queue = nil
	for _, cmd := range pending {
		cmd(m)
	}
}

// Draw draws every stacked state from bottom to top.
func (m *Manager) Draw(dst core.Canvas) {
	for _, e := range m.stack {
		e.state.Draw(dst)
	}
}

// Top returns the state receiving updates, or nil for an empty stack.
func (m *Manager) Top() State {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1].state
}

// TopName returns the registered name of the stack top.
func (m *Manager) TopName() string {
	if len(m.stack) == 0 {
		return ""
	}
	return m.stack[len(m.stack)-1].name
}

// Depth returns the number of stacked states.
func (m *Manager) Depth() int {
	return len(m.stack)
}

// Names returns the stack as registered names, bottom to top.
func (m *Manager) Names() []string {
	names := make([]string, len(m.stack))
	for i, e := range m.stack {
		names[i] = e.name
	}
	return names
}

// Pending returns the number of queued commands.
func (m *Manager) Pending() int {
	return len(m.queue)
}

func (m *Manager) contains(s State) bool {
	for _, e := range m.stack {
		if e.state == s {
			return true
		}
	}
	return false
}
