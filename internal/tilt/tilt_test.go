package tilt

import (
	"math"
	"testing"
)

func TestMove(t *testing.T) {
	r := Rect{Left: 100, Top: 50, Width: 200, Height: 100}
	tests := []struct {
		name   string
		px, py float64
		rx, ry float64
	}{
		{"centre", 200, 100, 0, 0},
		{"top left", 100, 50, 10, -10},
		{"bottom right", 300, 150, -10, 10},
		{"right middle", 250, 100, 0, 5},
		{"lower quarter", 200, 125, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Move(r, tt.px, tt.py)
			if math.Abs(tr.RotateX-tt.rx) > 1e-12 || math.Abs(tr.RotateY-tt.ry) > 1e-12 {
				t.Errorf("expected rotate (%v, %v), got (%v, %v)", tt.rx, tt.ry, tr.RotateX, tr.RotateY)
			}
			if tr.Scale != HoverScale || tr.Perspective != Perspective {
				t.Errorf("unexpected scale/perspective: %+v", tr)
			}
		})
	}
}

func TestLeaveIsFlat(t *testing.T) {
	tr := Leave()
	if !tr.IsFlat() {
		t.Errorf("expected flat transform, got %+v", tr)
	}
	if got, want := tr.CSS(), "perspective(1000px) rotateX(0deg) rotateY(0deg) scale(1)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDegenerateRect(t *testing.T) {
	tr := Move(Rect{Width: 0, Height: 10}, 5, 5)
	if !tr.IsFlat() {
		t.Errorf("expected flat transform for empty rect, got %+v", tr)
	}
}

func TestCSS(t *testing.T) {
	tr := Move(Rect{Width: 100, Height: 100}, 75, 25)
	want := "perspective(1000px) rotateX(5deg) rotateY(5deg) scale(1.02)"
	if got := tr.CSS(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestContains(t *testing.T) {
	r := Rect{Left: 1, Top: 1, Width: 2, Height: 2}
	if !r.Contains(1, 1) || r.Contains(3, 1) || r.Contains(0, 2) {
		t.Error("unexpected containment")
	}
}
