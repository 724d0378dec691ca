package particles

import (
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// Field owns the particle collection and renders it frame by frame.
type Field struct {
	cfg     Config
	surface Surface
	src     Source

	width, height float64
	particles     []Particle
	proj          []Projection // per-frame cache, reused across frames
	cos, sin      float64
	frame         int

	observers []Observer
}

// New builds a field drawing into surface. A nil surface means there is
// nothing to animate and yields ErrNoSurface; a nil src falls back to a
// time-seeded generator.
func New(surface Surface, cfg Config, src Source) (*Field, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Field{
		cfg:     cfg,
		surface: surface,
		src:     src,
		cos:     math.Cos(cfg.Rotation),
		sin:     math.Sin(cfg.Rotation),
	}, nil
}

// NewParticle samples a particle inside a w×h surface: x, y span the surface,
// z spans the width, and each velocity component is uniform in
// [-vrange/2, vrange/2].
func NewParticle(w, h, vrange float64, src Source) Particle {
	return Particle{
		Pos: Vec3{
			X: (src.Float64() - 0.5) * w,
			Y: (src.Float64() - 0.5) * h,
			Z: (src.Float64() - 0.5) * w,
		},
		Vel: Vec3{
			X: (src.Float64() - 0.5) * vrange,
			Y: (src.Float64() - 0.5) * vrange,
			Z: (src.Float64() - 0.5) * vrange,
		},
	}
}

func (f *Field) Config() Config         { return f.cfg }
func (f *Field) Size() (w, h float64)   { return f.width, f.height }
func (f *Field) Frame() int             { return f.frame }
func (f *Field) AddObserver(o Observer) { f.observers = append(f.observers, o) }
func (f *Field) Surface() Surface       { return f.surface }
func (f *Field) SetSurface(s Surface)   { f.surface = s }

// Particles returns a copy of the current collection.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Restore replaces the collection with ps, e.g. from a saved snapshot.
func (f *Field) Restore(ps []Particle) {
	f.particles = make([]Particle, len(ps))
	copy(f.particles, ps)
	f.proj = make([]Projection, len(ps))
}

// Resize records the surface dimensions. Initialize must follow, otherwise
// the particles keep the layout of the previous size.
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h
}

// Initialize discards the collection and samples Count fresh particles.
func (f *Field) Initialize() {
	f.particles = make([]Particle, f.cfg.Count)
	for i := range f.particles {
		f.particles[i] = NewParticle(f.width, f.height, f.cfg.VelocityRange, f.src)
	}
	f.proj = make([]Projection, f.cfg.Count)
	slog.Debug("particle field initialised", "count", f.cfg.Count, "width", f.width, "height", f.height)
}

// Refit resizes the field and scales the current collection into the new
// volume (x and z by the width ratio, y by the height ratio) so a restored
// layout survives a size change. Without a previous size or particles it
// falls back to Initialize. Velocities are kept.
func (f *Field) Refit(w, h float64) {
	oldW, oldH := f.width, f.height
	f.Resize(w, h)
	if oldW <= 0 || oldH <= 0 || len(f.particles) == 0 {
		f.Initialize()
		return
	}
	sx, sy := w/oldW, h/oldH
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos.X *= sx
		p.Pos.Y *= sy
		p.Pos.Z *= sx
	}
	slog.Debug("particle field refitted", "from_width", oldW, "from_height", oldH, "width", w, "height", h)
}

// Advance moves every particle one frame: rotate about Y, drift along Y and
// wrap at the top and bottom edges. Only VY is applied.
func (f *Field) Advance() {
	half := f.height / 2
	for i := range f.particles {
		p := &f.particles[i]
		x := p.Pos.X*f.cos - p.Pos.Z*f.sin
		z := p.Pos.Z*f.cos + p.Pos.X*f.sin
		p.Pos.X, p.Pos.Z = x, z

		p.Pos.Y += p.Vel.Y

		if p.Pos.Y > half {
			p.Pos.Y = -half
		}
		if p.Pos.Y < -half {
			p.Pos.Y = half
		}
	}
}

// Project maps p to screen space. Points at or behind the eye plane are
// reported with zero scale so they are culled like any distant point.
func (f *Field) Project(p Particle) Projection {
	denom := f.cfg.Perspective + p.Pos.Z + f.cfg.DepthOffset
	if denom <= 0 {
		return Projection{X: f.width / 2, Y: f.height / 2, Alpha: -f.cfg.AlphaFade}
	}
	scale := f.cfg.Perspective / denom
	return Projection{
		X:     f.width/2 + p.Pos.X*scale,
		Y:     f.height/2 + p.Pos.Y*scale,
		Scale: scale,
		Alpha: scale - f.cfg.AlphaFade,
	}
}

// RenderFrame clears the surface, advances the field and draws edges then
// points. It does not schedule the next frame; see Run.
func (f *Field) RenderFrame() FrameStats {
	s := f.surface
	s.ClearRect(0, 0, f.width, f.height)

	f.Advance()

	if len(f.proj) != len(f.particles) {
		f.proj = make([]Projection, len(f.particles))
	}
	for i := range f.particles {
		f.proj[i] = f.Project(f.particles[i])
	}

	stats := FrameStats{Frame: f.frame}
	d := f.cfg.ConnectionDistance

	s.SetLineWidth(f.cfg.LineWidth)
	for i := range f.proj {
		p1 := f.proj[i]
		if !p1.Visible() {
			continue
		}
		for j := i + 1; j < len(f.proj); j++ {
			p2 := f.proj[j]
			if !p2.Visible() {
				continue
			}
			dist := math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
			if dist >= d {
				continue
			}
			alpha := (1 - dist/d) * math.Min(p1.Alpha, p2.Alpha) * f.cfg.EdgeAlpha
			s.SetStrokeColor(f.cfg.Accent.WithAlpha(alpha))
			s.BeginPath()
			s.MoveTo(p1.X, p1.Y)
			s.LineTo(p2.X, p2.Y)
			s.Stroke()
			stats.Edges++
		}
	}

	for _, p := range f.proj {
		if !p.Visible() {
			continue
		}
		s.SetFillColor(f.cfg.Foreground.WithAlpha(p.Alpha))
		s.FillCircle(p.X, p.Y, f.cfg.PointRadius*p.Scale)
		stats.Visible++
	}

	f.frame++
	return stats
}
