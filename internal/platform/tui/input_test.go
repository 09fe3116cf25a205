package tui

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestHoldWindow(t *testing.T) {
	tests := []struct {
		rate int
		want int
	}{
		{60, 15},
		{30, 7},
		{4, 1},
		{1, 1},
	}
	for _, tt := range tests {
		if got := holdWindow(tt.rate); got != tt.want {
			t.Errorf("holdWindow(%d) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestHeldKeysPressIsEdge(t *testing.T) {
	h := newHeldKeys(3)
	h.press(core.KeyW)

	if !h.KeyPressed(core.KeyW) || !h.KeyDown(core.KeyW) {
		t.Fatal("pressed key should be both pressed and down")
	}

	h.endFrame()
	if h.KeyPressed(core.KeyW) {
		t.Error("press should last one frame")
	}
	if !h.KeyDown(core.KeyW) {
		t.Error("key should still be held inside the window")
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := newHeldKeys(3)
	h.press(core.KeyUp)

	for i := range 3 {
		if !h.KeyDown(core.KeyUp) {
			t.Fatalf("released after %d frames, want 3", i)
		}
		h.endFrame()
	}
	if h.KeyDown(core.KeyUp) {
		t.Error("key still held after the window elapsed")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := newHeldKeys(2)
	h.press(core.KeyS)
	h.endFrame()
	h.press(core.KeyS)
	h.endFrame()

	if !h.KeyDown(core.KeyS) {
		t.Error("auto-repeat should refresh the hold")
	}
}

func TestHeldKeysIgnoresNone(t *testing.T) {
	h := newHeldKeys(2)
	h.press(core.KeyNone)
	if h.KeyDown(core.KeyNone) || h.KeyPressed(core.KeyNone) {
		t.Error("KeyNone must never register")
	}
}
