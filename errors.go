package ggplot

import (
	"errors"
	"fmt"
)

// Common errors returned by Backend operations.
var (
	// ErrBackend reports a failure of the host painter. gg painters never
	// fail, so GGPainter never produces it; alternative Painter
	// implementations may.
	ErrBackend = errors.New("ggplot: painter failure")

	// ErrTriangulation is returned when a polygon cannot be split into
	// triangles (too few vertices, zero area, non-finite coordinates).
	ErrTriangulation = errors.New("ggplot: polygon triangulation failed")
)

// DrawingError wraps an error produced while executing one backend
// primitive. Op names the primitive, e.g. "fill polygon".
type DrawingError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *DrawingError) Error() string {
	return fmt.Sprintf("ggplot: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error so errors.Is works with the
// sentinel errors above.
func (e *DrawingError) Unwrap() error {
	return e.Err
}
