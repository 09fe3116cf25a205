package core

// Window aspect ratio in base units.
const (
	AspectW = 16
	AspectH = 9
)

// RuntimeConfig contains the values every host and screen derives its
// geometry from.
type RuntimeConfig struct {
	BaseUnit int    // Base unit in pixels; 120 gives 1920x1080
	TickRate int    // Updates per second (default 60)
	Title    string // Window title

	LeftColor  Color
	RightColor Color
	BallColor  Color
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BaseUnit:   120,
		TickRate:   60,
		Title:      "Pong",
		LeftColor:  ColorBlue,
		RightColor: ColorRed,
		BallColor:  ColorWhite,
	}
}

// WindowSize returns the window extent: BaseUnit*16 by BaseUnit*9.
func (c RuntimeConfig) WindowSize() Vec2 {
	return Vec2{
		X: float64(c.BaseUnit * AspectW),
		Y: float64(c.BaseUnit * AspectH),
	}
}
