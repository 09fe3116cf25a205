package core

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 6) {
		t.Errorf("Add() = %v, expected (4, 6)", got)
	}
	if got := a.Sub(b); got != V(2, 2) {
		t.Errorf("Sub() = %v, expected (2, 2)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Half(); got != V(1.5, 2) {
		t.Errorf("Half() = %v, expected (1.5, 2)", got)
	}
}

func TestVec2String(t *testing.T) {
	if got := V(15, 390.5).String(); got != "(15, 390.5)" {
		t.Errorf("String() = %q, expected (15, 390.5)", got)
	}
}
