package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Press(KeyEnter)
	f.Hold(KeyW)

	if !f.KeyPressed(KeyEnter) || !f.KeyDown(KeyEnter) {
		t.Error("pressed key should be both pressed and held")
	}
	if f.KeyPressed(KeyW) {
		t.Error("held key should not report a press edge")
	}
	if f.KeyDown(KeyS) || f.KeyPressed(KeyS) {
		t.Error("untouched key should be neither held nor pressed")
	}
}

func TestKeyString(t *testing.T) {
	if KeyUp.String() != "Up" || KeyNone.String() != "None" || Key(99).String() != "Unknown" {
		t.Error("unexpected key names")
	}
}
