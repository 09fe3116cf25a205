package core

// Key is a physical key the game polls. Bindings are fixed; hosts map
// their native key codes to these values.
type Key int

const (
	KeyNone       Key = iota
	KeyW              // left paddle up
	KeyS              // left paddle down
	KeyUp             // right paddle up, menu up
	KeyDown           // right paddle down, menu down
	KeyEnter          // confirm selection
	KeyPause          // pause / quick resume
	KeyFullscreen     // toggle fullscreen
	KeyDebug          // toggle debug overlay
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEnter:
		return "Enter"
	case KeyPause:
		return "Pause"
	case KeyFullscreen:
		return "Fullscreen"
	case KeyDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// Input answers the two questions screens ask about the keyboard.
type Input interface {
	// KeyDown reports whether k is currently held.
	KeyDown(k Key) bool
	// KeyPressed reports whether k went down during this frame.
	KeyPressed(k Key) bool
}

// InputFrame is the keyboard state for a single frame.
// A pressed key is always also held.
type InputFrame struct {
	held    map[Key]bool
	pressed map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

// Hold marks k as held without a press edge.
func (f *InputFrame) Hold(k Key) {
	if f.held == nil {
		f.held = make(map[Key]bool)
	}
	f.held[k] = true
}

// Press marks k as pressed this frame (and therefore held).
func (f *InputFrame) Press(k Key) {
	if f.pressed == nil {
		f.pressed = make(map[Key]bool)
	}
	f.pressed[k] = true
	f.Hold(k)
}

// KeyDown implements Input.
func (f InputFrame) KeyDown(k Key) bool {
	return f.held[k]
}

// KeyPressed implements Input.
func (f InputFrame) KeyPressed(k Key) bool {
	return f.pressed[k]
}
