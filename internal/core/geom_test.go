package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale() = %v, expected (1.5, 2)", got)
	}
	if got := a.Div(2); got != V(1.5, 2) {
		t.Errorf("Div() = %v, expected (1.5, 2)", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if !V(0, 0).IsZero() || a.IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAt(V(0, 0), 10, 10),
			b:        BoxAt(V(5, 5), 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAt(V(0, 0), 10, 10),
			b:        BoxAt(V(20, 0), 10, 10),
			expected: false,
		},
		{
			name:     "adjacent edges do not overlap",
			a:        BoxAt(V(0, 0), 10, 10),
			b:        BoxAt(V(10, 0), 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxAt(V(0, 0), 20, 20),
			b:        BoxAt(V(1, 1), 2, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(V(0, 0), 32, V(50, 0), 24) {
		t.Error("circles 50 apart with radii 32+24 should overlap")
	}
	if CirclesOverlap(V(0, 0), 32, V(56, 0), 24) {
		t.Error("touching circles should not overlap")
	}
}

func TestCircleBoxOverlap(t *testing.T) {
	wall := BoxAt(V(32, 32), 64, 64)

	if !CircleBoxOverlap(V(80, 32), 24, wall) {
		t.Error("circle pressing into the right face should overlap")
	}
	if CircleBoxOverlap(V(96, 32), 24, wall) {
		t.Error("circle 32 units from the face should not overlap")
	}
	// Diagonal distance from the corner matters, not the bounding square.
	if CircleBoxOverlap(V(64+20, 64+20), 24, wall) {
		t.Error("circle near the corner but outside the radius should not overlap")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if !r.Contains(2, 3) || !r.Contains(5, 7) {
		t.Error("Contains() should include the top-left and bottom-right cells")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("Contains() should exclude cells past Right()/Bottom()")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp() returned an out-of-range value")
	}
	if ClampF(1.5, -1, 1) != 1 || ClampF(-1.5, -1, 1) != -1 {
		t.Error("ClampF() returned an out-of-range value")
	}
}
