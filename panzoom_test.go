package panzoom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecApproxEqual(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

func TestVec2AddSub(t *testing.T) {
	a := Vec2{X: 3, Y: -2}
	b := Vec2{X: 1.5, Y: 4}

	if got := a.Add(b); got != (Vec2{X: 4.5, Y: 2}) {
		t.Errorf("Add = %v, want {4.5 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 1.5, Y: -6}) {
		t.Errorf("Sub = %v, want {1.5 -6}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if got := r.Center(); got != (Vec2{X: 60, Y: 45}) {
		t.Errorf("Center = %v, want {60 45}", got)
	}
}

func TestMousePositionRoundtrip(t *testing.T) {
	p := CapturedAt(12.5, -3)
	if got := p.Page(); got != (Vec2{X: 12.5, Y: -3}) {
		t.Errorf("Page = %v, want {12.5 -3}", got)
	}
}
