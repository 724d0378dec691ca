package particles

import "fmt"

const (
	DefaultCount              = 60
	DefaultConnectionDistance = 150.0
	DefaultRotation           = 0.002
	DefaultPerspective        = 300.0
	DefaultDepthOffset        = 400.0
	DefaultVelocityRange      = 0.5
	DefaultAlphaFade          = 0.2
	DefaultEdgeAlpha          = 0.5
	DefaultPointRadius        = 2.0
	DefaultLineWidth          = 1.0
)

var (
	// AccentBlue strokes the edges.
	AccentBlue = RGBA{R: 59, G: 130, B: 246, A: 1}
	// White fills the points.
	White = RGBA{R: 255, G: 255, B: 255, A: 1}
)

// Config holds the field tunables.
type Config struct {
	Count              int
	ConnectionDistance float64
	Rotation           float64 // radians per frame about the Y axis
	Perspective        float64 // focal constant
	DepthOffset        float64
	VelocityRange      float64 // total span, centred on zero
	AlphaFade          float64
	EdgeAlpha          float64
	PointRadius        float64 // multiplied by the projected scale
	LineWidth          float64
	Accent             RGBA
	Foreground         RGBA
}

func DefaultConfig() Config {
	return Config{
		Count:              DefaultCount,
		ConnectionDistance: DefaultConnectionDistance,
		Rotation:           DefaultRotation,
		Perspective:        DefaultPerspective,
		DepthOffset:        DefaultDepthOffset,
		VelocityRange:      DefaultVelocityRange,
		AlphaFade:          DefaultAlphaFade,
		EdgeAlpha:          DefaultEdgeAlpha,
		PointRadius:        DefaultPointRadius,
		LineWidth:          DefaultLineWidth,
		Accent:             AccentBlue,
		Foreground:         White,
	}
}

// Validate checks the tunables that would otherwise produce a blank or
// degenerate frame.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("%w: count %d", ErrInvalidConfig, c.Count)
	case c.ConnectionDistance <= 0:
		return fmt.Errorf("%w: connection distance %g", ErrInvalidConfig, c.ConnectionDistance)
	case c.Perspective <= 0:
		return fmt.Errorf("%w: perspective %g", ErrInvalidConfig, c.Perspective)
	case c.VelocityRange < 0:
		return fmt.Errorf("%w: velocity range %g", ErrInvalidConfig, c.VelocityRange)
	}
	return nil
}
