package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/herofx/internal/particles"
)

// Canvas draws the particle field with raylib primitives. It must be used
// between BeginDrawing/EndDrawing (or BeginTextureMode/EndTextureMode).
type Canvas struct {
	Background rl.Color

	lineWidth float32
	stroke    rl.Color
	fill      rl.Color
	path      []rl.Vector2
	segments  [][2]rl.Vector2
}

// ClearRect paints the background over the rectangle, clearing the whole
// target when the rectangle starts at the origin.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 {
		rl.ClearBackground(c.Background)
		return
	}
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), c.Background)
}

func (c *Canvas) SetLineWidth(w float64)            { c.lineWidth = float32(w) }
func (c *Canvas) SetStrokeColor(col particles.RGBA) { c.stroke = toColor(col) }
func (c *Canvas) SetFillColor(col particles.RGBA)   { c.fill = toColor(col) }

func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
	c.segments = c.segments[:0]
}

func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path[:0], rl.NewVector2(float32(x), float32(y)))
}

func (c *Canvas) LineTo(x, y float64) {
	p := rl.NewVector2(float32(x), float32(y))
	if n := len(c.path); n > 0 {
		c.segments = append(c.segments, [2]rl.Vector2{c.path[n-1], p})
	}
	c.path = append(c.path, p)
}

func (c *Canvas) Stroke() {
	for _, s := range c.segments {
		rl.DrawLineEx(s[0], s[1], c.lineWidth, c.stroke)
	}
}

func (c *Canvas) FillCircle(x, y, r float64) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), c.fill)
}

func toColor(c particles.RGBA) rl.Color {
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return rl.NewColor(c.R, c.G, c.B, uint8(a*255+0.5))
}
