package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/herofx/internal/particles"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// DefaultMinAlpha is the dimmest opacity that still lights a dot.
const DefaultMinAlpha = 0.04

type cell struct {
	color particles.RGBA
}

// Braille is a terminal drawing surface. Its pixel space is the braille
// sub-pixel grid: (Cols*2) x (Rows*4).
type Braille struct {
	Cols, Rows int
	Grid       [][]rune
	MinAlpha   float64

	cells        [][]cell
	stroke, fill particles.RGBA
	lineWidth    float64
	path         []point
	subpaths     []int
}

func NewBraille(cols, rows int) *Braille {
	b := &Braille{MinAlpha: DefaultMinAlpha, lineWidth: 1}
	b.Resize(cols, rows)
	return b
}

// Resize reallocates the grid for a new terminal size and clears it.
func (b *Braille) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	b.Cols, b.Rows = cols, rows
	b.Grid = make([][]rune, rows)
	b.cells = make([][]cell, rows)
	for i := range b.Grid {
		b.Grid[i] = make([]rune, cols)
		b.cells[i] = make([]cell, cols)
	}
	b.Clear()
}

// PixelSize reports the drawable size in sub-pixels.
func (b *Braille) PixelSize() (w, h int) { return b.Cols * 2, b.Rows * 4 }

// Set lights the sub-pixel (x, y) in colour c. Dots dimmer than MinAlpha
// stay dark; a cell keeps the colour of its brightest dot.
func (b *Braille) Set(x, y int, c particles.RGBA) {
	if x < 0 || y < 0 || c.A < b.MinAlpha {
		return
	}
	col, row := x/2, y/4
	if col >= b.Cols || row >= b.Rows {
		return
	}
	b.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if c.A > b.cells[row][col].color.A {
		b.cells[row][col].color = c
	}
}

// Unset clears a sub-pixel.
func (b *Braille) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Cols || row >= b.Rows {
		return
	}
	b.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if b.Grid[row][col] < blank {
		b.Grid[row][col] = blank
	}
	if b.Grid[row][col] == blank {
		b.cells[row][col] = cell{}
	}
}

// Dots calls fn for every lit sub-pixel, row by row, with the colour of
// its cell.
func (b *Braille) Dots(fn func(x, y int, c particles.RGBA)) {
	for row := range b.Grid {
		for col, r := range b.Grid[row] {
			if r <= blank {
				continue
			}
			pattern := int(r - blank)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						fn(col*2+dx, row*4+dy, b.cells[row][col].color)
					}
				}
			}
		}
	}
}

// Clear resets the canvas.
func (b *Braille) Clear() {
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.Grid[i][j] = blank
			b.cells[i][j] = cell{}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (b *Braille) DrawLine(x0, y0, x1, y1 int, c particles.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillDisc lights every sub-pixel within r of (cx, cy). Radii under one
// sub-pixel light the centre only.
func (b *Braille) FillDisc(cx, cy, r float64, c particles.RGBA) {
	if r < 1 {
		b.Set(round(cx), round(cy), c)
		return
	}
	r2 := r * r
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				b.Set(x, y, c)
			}
		}
	}
}

// particles.Surface

func (b *Braille) ClearRect(x, y, w, h float64) {
	pw, ph := b.PixelSize()
	if x <= 0 && y <= 0 && x+w >= float64(pw) && y+h >= float64(ph) {
		b.Clear()
		return
	}
	for py := round(y); py < round(y+h); py++ {
		for px := round(x); px < round(x+w); px++ {
			b.Unset(px, py)
		}
	}
}

func (b *Braille) SetLineWidth(w float64)          { b.lineWidth = w }
func (b *Braille) SetStrokeColor(c particles.RGBA) { b.stroke = c }
func (b *Braille) SetFillColor(c particles.RGBA)   { b.fill = c }

func (b *Braille) BeginPath() {
	b.path = b.path[:0]
	b.subpaths = b.subpaths[:0]
}

func (b *Braille) MoveTo(x, y float64) {
	b.subpaths = append(b.subpaths, len(b.path))
	b.path = append(b.path, point{x, y})
}

func (b *Braille) LineTo(x, y float64) {
	if len(b.path) == 0 {
		b.MoveTo(x, y)
		return
	}
	b.path = append(b.path, point{x, y})
}

func (b *Braille) Stroke() {
	for i := 1; i < len(b.path); i++ {
		if containsInt(b.subpaths, i) {
			continue
		}
		p, q := b.path[i-1], b.path[i]
		b.DrawLine(round(p.x), round(p.y), round(q.x), round(q.y), b.stroke)
	}
}

func (b *Braille) FillCircle(x, y, r float64) { b.FillDisc(x, y, r, b.fill) }

// String returns the grid without colour.
func (b *Braille) String() string {
	var sb strings.Builder
	for _, row := range b.Grid {
		sb.WriteString(string(row) + "\n")
	}
	return sb.String()
}

// Render returns the grid coloured through lipgloss, each cell's colour
// blended over bg by the opacity of its brightest dot. Runs of equal colour
// share one style.
func (b *Braille) Render(bg particles.RGBA) string {
	var sb strings.Builder
	for r, row := range b.Grid {
		var run strings.Builder
		runHex := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHex == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runHex)).Render(run.String()))
			}
			run.Reset()
		}
		for c, ch := range row {
			hex := ""
			if ch != blank {
				hex = Blend(b.cells[r][c].color, bg)
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(ch)
		}
		flush()
		if r < len(b.Grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Blend composites c over bg by c.A and returns a hex colour.
func Blend(c, bg particles.RGBA) string {
	a := math.Max(0, math.Min(1, c.A))
	return toColorful(bg).BlendRgb(toColorful(c), a).Hex()
}

func toColorful(c particles.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func round(v float64) int { return int(math.Round(v)) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
