package surface

import "github.com/san-kum/herofx/internal/particles"

// Scaled maps field units onto a smaller or larger surface, e.g. CSS pixels
// onto braille dots.
type Scaled struct {
	particles.Surface
	Factor float64
}

func (s Scaled) ClearRect(x, y, w, h float64) {
	f := s.Factor
	s.Surface.ClearRect(x*f, y*f, w*f, h*f)
}

func (s Scaled) SetLineWidth(w float64)     { s.Surface.SetLineWidth(w * s.Factor) }
func (s Scaled) MoveTo(x, y float64)        { s.Surface.MoveTo(x*s.Factor, y*s.Factor) }
func (s Scaled) LineTo(x, y float64)        { s.Surface.LineTo(x*s.Factor, y*s.Factor) }
func (s Scaled) FillCircle(x, y, r float64) { s.Surface.FillCircle(x*s.Factor, y*s.Factor, r*s.Factor) }
