// Package particles animates the hero background: a fixed set of 3D points
// slowly rotating about the vertical axis, projected with a simple
// perspective and joined by faint edges when their projections are close.
//
// The package defines the pieces the animation is made of:
//
//   - [Particle]: a point with a velocity sampled once at creation
//   - [Field]: owns the particles and renders one frame at a time
//   - [Surface]: the immediate-mode 2D drawing context a frame is drawn into
//   - [Scheduler]: the "next frame" primitive driving [Field.Run]
//
// # Example
//
//	field, _ := particles.New(canvas, particles.DefaultConfig(), nil)
//	field.Resize(w, h)
//	field.Initialize()
//	err := field.Run(ctx, particles.NewTicker(60), sizes)
//
// # Thread Safety
//
// A Field is NOT safe for concurrent use. [Field.Run] serialises frames and
// resizes on a single goroutine; callers that drive frames themselves (the
// terminal page does so from its Bubble Tea update loop) must do the same.
package particles
