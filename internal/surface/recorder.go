package surface

import "github.com/san-kum/herofx/internal/particles"

// Op identifies a recorded drawing command.
type Op int

const (
	OpClear Op = iota
	OpLine
	OpCircle
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpCircle:
		return "circle"
	}
	return "unknown"
}

// Command is one recorded drawing operation. Lines use X1..Y2 and Width,
// circles use X1, Y1 and R, clears use X1, Y1 as origin and X2, Y2 as size.
type Command struct {
	Op             Op
	X1, Y1, X2, Y2 float64
	R              float64
	Width          float64
	Color          particles.RGBA
}

type point struct{ x, y float64 }

// Recorder is a Surface that keeps every stroked segment and filled circle
// instead of rasterising them.
type Recorder struct {
	Commands []Command

	stroke, fill particles.RGBA
	lineWidth    float64
	path         []point
	subpaths     []int
}

func NewRecorder() *Recorder {
	return &Recorder{lineWidth: 1}
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Commands = append(r.Commands, Command{Op: OpClear, X1: x, Y1: y, X2: w, Y2: h})
}

func (r *Recorder) SetLineWidth(w float64)          { r.lineWidth = w }
func (r *Recorder) SetStrokeColor(c particles.RGBA) { r.stroke = c }
func (r *Recorder) SetFillColor(c particles.RGBA)   { r.fill = c }

func (r *Recorder) BeginPath() {
	r.path = r.path[:0]
	r.subpaths = r.subpaths[:0]
}

func (r *Recorder) MoveTo(x, y float64) {
	r.subpaths = append(r.subpaths, len(r.path))
	r.path = append(r.path, point{x, y})
}

func (r *Recorder) LineTo(x, y float64) {
	if len(r.path) == 0 {
		r.MoveTo(x, y)
		return
	}
	r.path = append(r.path, point{x, y})
}

// Stroke emits one line command per segment of the current path.
func (r *Recorder) Stroke() {
	for i := 1; i < len(r.path); i++ {
		if containsInt(r.subpaths, i) {
			continue
		}
		a, b := r.path[i-1], r.path[i]
		r.Commands = append(r.Commands, Command{
			Op: OpLine, X1: a.x, Y1: a.y, X2: b.x, Y2: b.y,
			Width: r.lineWidth, Color: r.stroke,
		})
	}
}

func (r *Recorder) FillCircle(x, y, radius float64) {
	r.Commands = append(r.Commands, Command{Op: OpCircle, X1: x, Y1: y, R: radius, Color: r.fill})
}

// LastFrame returns the commands issued since the most recent clear.
func (r *Recorder) LastFrame() []Command {
	for i := len(r.Commands) - 1; i >= 0; i-- {
		if r.Commands[i].Op == OpClear {
			return r.Commands[i+1:]
		}
	}
	return r.Commands
}

// Lines returns the line commands of the last frame.
func (r *Recorder) Lines() []Command { return r.filter(OpLine) }

// Circles returns the circle commands of the last frame.
func (r *Recorder) Circles() []Command { return r.filter(OpCircle) }

func (r *Recorder) filter(op Op) []Command {
	var out []Command
	for _, c := range r.LastFrame() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.BeginPath()
}
