package particles

import "errors"

var (
	// ErrNoSurface indicates the field was built without a drawing surface.
	ErrNoSurface = errors.New("particles: no drawing surface")

	// ErrInvalidConfig indicates a tunable outside its valid range.
	ErrInvalidConfig = errors.New("particles: invalid config")
)
