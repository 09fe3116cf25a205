package core

import "testing"

func TestWindowHost(t *testing.T) {
	w := NewWindow(DefaultConfig())

	if got := w.WindowSize(); got != V(1920, 1080) {
		t.Errorf("WindowSize() = %v, expected (1920, 1080)", got)
	}
	if w.QuitRequested() {
		t.Error("new window should not request quit")
	}
	w.ToggleFullscreen()
	if !w.Fullscreen() {
		t.Error("ToggleFullscreen should enable fullscreen")
	}
	w.RequestQuit()
	if !w.QuitRequested() {
		t.Error("RequestQuit should set the quit flag")
	}
}
