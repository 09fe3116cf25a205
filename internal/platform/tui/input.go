package tui

import "github.com/vovakirdan/tui-pong/internal/core"

// heldKeys turns the terminal's stream of key presses into held/pressed
// state. Terminals report no key releases, only presses and auto-repeats,
// so a key counts as held for a fixed number of ticks after its last press.
type heldKeys struct {
	held    map[core.Key]int
	pressed map[core.Key]bool
	window  int
}

// holdWindow returns how many ticks a press keeps a key held:
// a quarter second, which bridges typical auto-repeat gaps.
func holdWindow(tickRate int) int {
	return max(tickRate/4, 1)
}

func newHeldKeys(window int) *heldKeys {
	return &heldKeys{
		held:    make(map[core.Key]int),
		pressed: make(map[core.Key]bool),
		window:  window,
	}
}

// press records a key event.
func (h *heldKeys) press(k core.Key) {
	if k == core.KeyNone {
		return
	}
	h.pressed[k] = true
	h.held[k] = h.window
}

// KeyDown implements core.Input.
func (h *heldKeys) KeyDown(k core.Key) bool {
	return h.held[k] > 0
}

// KeyPressed implements core.Input.
func (h *heldKeys) KeyPressed(k core.Key) bool {
	return h.pressed[k]
}

// endFrame drops press edges and ages held keys by one tick.
func (h *heldKeys) endFrame() {
	for k := range h.pressed {
		delete(h.pressed, k)
	}
	for k, n := range h.held {
		if n <= 1 {
			delete(h.held, k)
			continue
		}
		h.held[k] = n - 1
	}
}
