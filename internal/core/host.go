package core

// Canvas is the set of draw calls a screen may issue. Coordinates are in
// window pixels; hosts scale them to whatever they actually render to.
type Canvas interface {
	// Clear fills the whole window with c.
	Clear(c Color)

	// DrawRect fills the rectangle with top-left corner pos and extent size.
	DrawRect(pos, size Vec2, c Color)

	// DrawCircle fills a circle around center.
	DrawCircle(center Vec2, radius float64, c Color)

	// DrawText writes text with its top-left at pos. size is the glyph
	// height in pixels; hosts without scalable fonts may ignore it.
	DrawText(text string, pos Vec2, size float64, c Color)
}

// Host is what screens may ask of the environment that runs them.
type Host interface {
	// WindowSize returns the logical window extent.
	WindowSize() Vec2

	// ToggleFullscreen flips fullscreen mode.
	ToggleFullscreen()

	// RequestQuit asks the main loop to stop after the current frame.
	RequestQuit()
}

// Window is the flag-holding Host every concrete platform embeds.
// The main loop reads QuitRequested once per iteration.
type Window struct {
	size       Vec2
	fullscreen bool
	quit       bool
}

// NewWindow creates a Window of the size derived from cfg.
func NewWindow(cfg RuntimeConfig) *Window {
	return &Window{size: cfg.WindowSize()}
}

// WindowSize implements Host.
func (w *Window) WindowSize() Vec2 {
	return w.size
}

// ToggleFullscreen implements Host.
func (w *Window) ToggleFullscreen() {
	w.fullscreen = !w.fullscreen
}

// RequestQuit implements Host.
func (w *Window) RequestQuit() {
	w.quit = true
}

// Fullscreen reports the requested fullscreen mode.
func (w *Window) Fullscreen() bool {
	return w.fullscreen
}

// QuitRequested reports whether a screen asked the loop to stop.
func (w *Window) QuitRequested() bool {
	return w.quit
}
