package particles

import "fmt"

// Vec3 is a point or direction in field space.
type Vec3 struct {
	X, Y, Z float64
}

// Particle is a point in the field volume. Velocity is sampled once at
// creation; only VY is ever applied to the position.
type Particle struct {
	Pos Vec3
	Vel Vec3
}

// Projection is a particle mapped to screen space for one frame.
type Projection struct {
	X, Y  float64
	Scale float64
	Alpha float64
}

// Visible reports whether the projection is in front of the depth horizon.
func (p Projection) Visible() bool { return p.Alpha > 0 }

// RGBA is a canvas-style colour: 8-bit channels and a float opacity.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns c with opacity a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Surface is the immediate-mode drawing context a frame is rendered into.
type Surface interface {
	ClearRect(x, y, w, h float64)
	SetLineWidth(w float64)
	SetStrokeColor(c RGBA)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	SetFillColor(c RGBA)
	FillCircle(x, y, r float64)
}

// Source yields uniform samples in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// FrameStats summarises what one rendered frame drew.
type FrameStats struct {
	Frame   int // 0-based index of the frame drawn; Field.Frame counts frames so far
	Visible int
	Edges   int
}
