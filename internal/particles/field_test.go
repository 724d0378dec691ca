package particles_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/herofx/internal/particles"
	"github.com/san-kum/herofx/internal/surface"
)

type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

var _ = Describe("Field", func() {
	var (
		rec   *surface.Recorder
		cfg   particles.Config
		field *particles.Field
	)

	BeforeEach(func() {
		rec = surface.NewRecorder()
		cfg = particles.DefaultConfig()
	})

	build := func() {
		var err error
		field, err = particles.New(rec, cfg, rand.New(rand.NewSource(42)))
		Expect(err).NotTo(HaveOccurred())
		field.Resize(800, 600)
		field.Initialize()
	}

	Describe("Refit", func() {
		It("scales a restored layout into the new size", func() {
			build()
			ps := []particles.Particle{
				{Pos: particles.Vec3{X: 400, Y: 300, Z: -400}, Vel: particles.Vec3{Y: 0.1}},
				{Pos: particles.Vec3{X: -200, Y: -150, Z: 100}},
			}
			field.Resize(1280, 720)
			field.Restore(ps)

			field.Refit(640, 360)

			w, h := field.Size()
			Expect(w).To(Equal(640.0))
			Expect(h).To(Equal(360.0))
			got := field.Particles()
			Expect(got).To(HaveLen(2))
			Expect(got[0].Pos).To(Equal(particles.Vec3{X: 200, Y: 150, Z: -200}))
			Expect(got[0].Vel).To(Equal(ps[0].Vel))
			Expect(got[1].Pos).To(Equal(particles.Vec3{X: -100, Y: -75, Z: 50}))
		})

		It("keeps every particle inside the new bounds through the next frame", func() {
			build()
			field.Resize(1280, 720)
			field.Initialize()
			before := field.Particles()

			field.Refit(640, 384)
			field.RenderFrame()

			_, h := field.Size()
			for i, p := range field.Particles() {
				Expect(math.Abs(p.Pos.Y)).To(BeNumerically("<=", h/2))
				want := before[i].Pos.Y*384/720 + before[i].Vel.Y
				if math.Abs(want) <= h/2 {
					Expect(p.Pos.Y).To(BeNumerically("~", want, 1e-9), "particle %d wrapped", i)
				}
			}
		})

		It("initialises when there is nothing to scale", func() {
			f, err := particles.New(rec, cfg, rand.New(rand.NewSource(1)))
			Expect(err).NotTo(HaveOccurred())
			f.Refit(800, 600)
			Expect(f.Particles()).To(HaveLen(cfg.Count))
		})
	})

	Describe("construction", func() {
		It("never starts without a surface", func() {
			f, err := particles.New(nil, cfg, nil)
			Expect(err).To(MatchError(particles.ErrNoSurface))
			Expect(f).To(BeNil())
		})

		It("rejects invalid tunables", func() {
			cfg.ConnectionDistance = 0
			_, err := particles.New(rec, cfg, nil)
			Expect(err).To(MatchError(particles.ErrInvalidConfig))
		})

		It("samples a particle from explicit uniform draws", func() {
			src := &seqSource{vals: []float64{0, 0.25, 0.5, 0.75, 1, 0.5}}
			p := particles.NewParticle(800, 600, 0.5, src)
			Expect(p.Pos).To(Equal(particles.Vec3{X: -400, Y: -150, Z: 0}))
			Expect(p.Vel).To(Equal(particles.Vec3{X: 0.125, Y: 0.25, Z: 0}))
		})
	})

	Describe("Initialize", func() {
		BeforeEach(build)

		It("creates exactly Count particles inside the volume", func() {
			ps := field.Particles()
			Expect(ps).To(HaveLen(particles.DefaultCount))
			for _, p := range ps {
				Expect(p.Pos.X).To(BeNumerically(">=", -400))
				Expect(p.Pos.X).To(BeNumerically("<=", 400))
				Expect(p.Pos.Y).To(BeNumerically(">=", -300))
				Expect(p.Pos.Y).To(BeNumerically("<=", 300))
				Expect(p.Pos.Z).To(BeNumerically(">=", -400))
				Expect(p.Pos.Z).To(BeNumerically("<=", 400))
				for _, v := range []float64{p.Vel.X, p.Vel.Y, p.Vel.Z} {
					Expect(v).To(BeNumerically(">=", -0.25))
					Expect(v).To(BeNumerically("<=", 0.25))
				}
			}
		})

		It("re-randomises on every call", func() {
			first := field.Particles()
			field.Initialize()
			second := field.Particles()
			Expect(second).To(HaveLen(particles.DefaultCount))
			Expect(second).NotTo(Equal(first))
		})
	})

	Describe("Advance", func() {
		BeforeEach(build)

		It("keeps y within half the height", func() {
			for i := 0; i < 5000; i++ {
				field.Advance()
			}
			for _, p := range field.Particles() {
				Expect(math.Abs(p.Pos.Y)).To(BeNumerically("<=", 300))
			}
		})

		It("preserves the x-z radius", func() {
			before := field.Particles()
			field.Advance()
			after := field.Particles()
			for i := range before {
				r0 := before[i].Pos.X*before[i].Pos.X + before[i].Pos.Z*before[i].Pos.Z
				r1 := after[i].Pos.X*after[i].Pos.X + after[i].Pos.Z*after[i].Pos.Z
				Expect(r1).To(BeNumerically("~", r0, 1e-9*math.Max(1, r0)))
			}
		})

		It("applies only the vertical velocity", func() {
			cfg.Rotation = 0
			build()
			field.Restore([]particles.Particle{{
				Pos: particles.Vec3{X: 10, Y: 0, Z: 20},
				Vel: particles.Vec3{X: 5, Y: 0.25, Z: 5},
			}})
			field.Advance()
			p := field.Particles()[0]
			Expect(p.Pos).To(Equal(particles.Vec3{X: 10, Y: 0.25, Z: 20}))
		})

		It("wraps to the opposite edge", func() {
			cfg.Rotation = 0
			build()
			field.Restore([]particles.Particle{
				{Pos: particles.Vec3{Y: 299.9}, Vel: particles.Vec3{Y: 0.25}},
				{Pos: particles.Vec3{Y: -299.9}, Vel: particles.Vec3{Y: -0.25}},
			})
			field.Advance()
			ps := field.Particles()
			Expect(ps[0].Pos.Y).To(Equal(-300.0))
			Expect(ps[1].Pos.Y).To(Equal(300.0))
		})
	})

	Describe("Project", func() {
		BeforeEach(build)

		It("shrinks particles as they move away", func() {
			prev := math.Inf(1)
			for z := -650.0; z <= 2000; z += 25 {
				pr := field.Project(particles.Particle{Pos: particles.Vec3{Z: z}})
				Expect(pr.Scale).To(BeNumerically("<", prev))
				prev = pr.Scale
			}
		})

		It("centres the origin and fades by depth", func() {
			pr := field.Project(particles.Particle{Pos: particles.Vec3{X: 100, Y: -40, Z: -100}})
			Expect(pr.Scale).To(Equal(0.5))
			Expect(pr.X).To(Equal(450.0))
			Expect(pr.Y).To(Equal(280.0))
			Expect(pr.Alpha).To(BeNumerically("~", 0.3, 1e-12))
		})

		It("culls points at or behind the eye plane", func() {
			pr := field.Project(particles.Particle{Pos: particles.Vec3{Z: -700}})
			Expect(pr.Visible()).To(BeFalse())
			pr = field.Project(particles.Particle{Pos: particles.Vec3{Z: -900}})
			Expect(pr.Visible()).To(BeFalse())
		})
	})

	Describe("RenderFrame", func() {
		BeforeEach(func() {
			cfg.Rotation = 0
			build()
		})

		It("draws an edge with the exact distance-weighted opacity", func() {
			ps := []particles.Particle{
				{Pos: particles.Vec3{X: 0, Z: -100}},
				{Pos: particles.Vec3{X: 200, Z: -100}},
			}
			field.Restore(ps)
			stats := field.RenderFrame()

			alpha := field.Project(ps[0]).Alpha
			dist, d := 100.0, 150.0
			want := (1 - dist/d) * alpha * 0.5

			lines := rec.Lines()
			Expect(lines).To(HaveLen(1))
			Expect(lines[0].Color.A).To(Equal(want))
			Expect(lines[0].Color.A).To(BeNumerically("~", 0.05, 1e-12))
			Expect(lines[0].Color.R).To(Equal(uint8(59)))
			Expect(lines[0].X1).To(Equal(400.0))
			Expect(lines[0].X2).To(Equal(500.0))
			Expect(stats.Edges).To(Equal(1))
			Expect(stats.Visible).To(Equal(2))
		})

		It("draws points with radius 2*scale and their own opacity", func() {
			field.Restore([]particles.Particle{{Pos: particles.Vec3{Z: -100}}})
			field.RenderFrame()

			circles := rec.Circles()
			Expect(circles).To(HaveLen(1))
			Expect(circles[0].R).To(Equal(1.0))
			Expect(circles[0].Color.A).To(BeNumerically("~", 0.3, 1e-12))
			Expect(circles[0].Color.R).To(Equal(uint8(255)))
		})

		It("skips pairs at or beyond the connection distance", func() {
			field.Restore([]particles.Particle{
				{Pos: particles.Vec3{X: 0, Z: -100}},
				{Pos: particles.Vec3{X: 300, Z: -100}},
			})
			stats := field.RenderFrame()
			Expect(rec.Lines()).To(BeEmpty())
			Expect(stats.Edges).To(BeZero())
		})

		It("never draws culled particles", func() {
			field.Restore([]particles.Particle{
				{Pos: particles.Vec3{X: 0, Z: -100}},
				{Pos: particles.Vec3{X: 10, Z: 2000}},
			})
			stats := field.RenderFrame()
			Expect(rec.Circles()).To(HaveLen(1))
			Expect(rec.Lines()).To(BeEmpty())
			Expect(stats.Visible).To(Equal(1))
		})

		It("clears the whole surface first", func() {
			field.RenderFrame()
			Expect(rec.Commands[0].Op).To(Equal(surface.OpClear))
			Expect(rec.Commands[0].X2).To(Equal(800.0))
			Expect(rec.Commands[0].Y2).To(Equal(600.0))
		})

		It("counts frames", func() {
			field.RenderFrame()
			field.RenderFrame()
			Expect(field.Frame()).To(Equal(2))
		})
	})
})
