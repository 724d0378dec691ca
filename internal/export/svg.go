package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/herofx/internal/particles"
	"github.com/san-kum/herofx/internal/surface"
)

// FrameToSVG converts one recorded frame to an SVG document of size w x h
// over a solid background.
func FrameToSVG(frame []surface.Command, w, h float64, bg particles.RGBA) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, hex(bg)))

	for _, c := range frame {
		switch c.Op {
		case surface.OpLine:
			sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-opacity="%.4f" stroke-width="%g"/>
`, c.X1, c.Y1, c.X2, c.Y2, hex(c.Color), c.Color.A, c.Width))
		case surface.OpCircle:
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.4f"/>
`, c.X1, c.Y1, c.R, hex(c.Color), c.Color.A))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// BrailleToSVG converts a braille canvas to SVG, one circle per lit dot in
// its cell colour blended over bg, as the terminal shows it.
func BrailleToSVG(canvas *surface.Braille, scale float64, bg particles.RGBA) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.PixelSize()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hex(bg)))

	dotRadius := scale * 0.4

	canvas.Dots(func(x, y int, c particles.RGBA) {
		cx := float64(x)*scale + scale/2
		cy := float64(y)*scale + scale/2
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, surface.Blend(c, bg)))
	})

	sb.WriteString("</svg>")
	return sb.String()
}

func hex(c particles.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
