// Package tilt computes the pointer-driven 3D tilt applied to feature cards.
package tilt

import "fmt"

const (
	Perspective = 1000.0 // px
	MaxAngle    = 10.0   // degrees at the card edge
	HoverScale  = 1.02
)

// Rect is a card's bounding box in the same units as the pointer.
type Rect struct {
	Left, Top, Width, Height float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Transform is a perspective rotation in degrees.
type Transform struct {
	Perspective float64
	RotateX     float64
	RotateY     float64
	Scale       float64
}

// Flat is the resting transform.
func Flat() Transform {
	return Transform{Perspective: Perspective, Scale: 1}
}

// Move tilts towards the pointer: the card's far edge dips by MaxAngle,
// the vertical axis inverted so the top leans back when the pointer is high.
// A degenerate rectangle stays flat.
func Move(r Rect, px, py float64) Transform {
	cx, cy := r.Width/2, r.Height/2
	if cx <= 0 || cy <= 0 {
		return Flat()
	}
	x, y := px-r.Left, py-r.Top
	return Transform{
		Perspective: Perspective,
		RotateX:     ((y - cy) / cy) * -MaxAngle,
		RotateY:     ((x - cx) / cx) * MaxAngle,
		Scale:       HoverScale,
	}
}

// Leave resets the card when the pointer exits.
func Leave() Transform { return Flat() }

// IsFlat reports whether t is the resting transform.
func (t Transform) IsFlat() bool {
	return t.RotateX == 0 && t.RotateY == 0 && t.Scale == 1
}

// CSS formats t as a CSS transform value.
func (t Transform) CSS() string {
	return fmt.Sprintf("perspective(%gpx) rotateX(%gdeg) rotateY(%gdeg) scale(%g)",
		t.Perspective, t.RotateX, t.RotateY, t.Scale)
}
