package ggplot

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/ggplot/input"
)

// Default input sensitivities.
const (
	// DefaultMoveScale converts pointer pixels into radians of rotation.
	DefaultMoveScale = 0.01
	// DefaultScrollScale converts scrolled pixels into zoom.
	DefaultScrollScale = 0.001
)

// Transform is the view state a Chart carries between frames. Pitch and
// yaw are radians; X and Y are pixel offsets.
type Transform struct {
	Pitch float64
	Yaw   float64
	Scale float64
	X     int
	Y     int
}

// DefaultTransform returns the identity view: no rotation, a scale of 1
// and no offset.
func DefaultTransform() Transform {
	return Transform{Scale: 1}
}

// Project rotates p by yaw about the vertical axis, then by pitch about
// the horizontal axis, and returns the scaled X and Y of the result. Y
// points up.
//
// Offset and scale are already applied by the Backend, so builders that
// draw through it should project with a unit scale.
func (t Transform) Project(p r3.Vec) (x, y float64) {
	p = t.Rotate(p)
	return p.X * t.Scale, p.Y * t.Scale
}

// Rotate applies the yaw then pitch rotation to p.
func (t Transform) Rotate(p r3.Vec) r3.Vec {
	if t.Yaw != 0 {
		p = r3.NewRotation(t.Yaw, r3.Vec{Y: 1}).Rotate(p)
	}
	if t.Pitch != 0 {
		p = r3.NewRotation(t.Pitch, r3.Vec{X: 1}).Rotate(p)
	}
	return p
}

// MouseButton selects the pointer button that drives an interaction.
type MouseButton uint8

// Pointer buttons.
const (
	MousePrimary MouseButton = iota
	MouseMiddle
	MouseSecondary
)

// IsDown reports whether the button is held in s.
func (b MouseButton) IsDown(s input.Snapshot) bool {
	return s.Buttons.Has(b.Buttons())
}

// Buttons returns the input button b stands for, or zero for an unknown
// button.
func (b MouseButton) Buttons() input.Buttons {
	switch b {
	case MousePrimary:
		return input.Primary
	case MouseMiddle:
		return input.Middle
	case MouseSecondary:
		return input.Secondary
	default:
		return 0
	}
}

// String returns the button's name.
func (b MouseButton) String() string {
	switch b {
	case MousePrimary:
		return "primary"
	case MouseMiddle:
		return "middle"
	case MouseSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// MouseConfig says which pointer interactions a Chart reacts to and how
// strongly.
//
// The With methods return a modified copy.
type MouseConfig struct {
	Drag   bool
	Rotate bool
	Zoom   bool

	YawScale   float64
	PitchScale float64
	ZoomScale  float64

	DragBind   MouseButton
	RotateBind MouseButton
}

// DefaultMouseConfig returns a configuration with every interaction off,
// default sensitivities, dragging on the middle button and rotating on the
// primary button.
func DefaultMouseConfig() MouseConfig {
	return MouseConfig{
		YawScale:   DefaultMoveScale,
		PitchScale: DefaultMoveScale,
		ZoomScale:  DefaultScrollScale,
		DragBind:   MouseMiddle,
		RotateBind: MousePrimary,
	}
}

// EnabledMouseConfig is DefaultMouseConfig with every interaction on.
func EnabledMouseConfig() MouseConfig {
	return DefaultMouseConfig().WithAll(true)
}

// WithDrag turns panning with the drag button on or off.
func (c MouseConfig) WithDrag(on bool) MouseConfig {
	c.Drag = on
	return c
}

// WithRotate turns rotating with the rotate button on or off.
func (c MouseConfig) WithRotate(on bool) MouseConfig {
	c.Rotate = on
	return c
}

// WithZoom turns wheel zoom on or off.
func (c MouseConfig) WithZoom(on bool) MouseConfig {
	c.Zoom = on
	return c
}

// WithAll turns every interaction on or off.
func (c MouseConfig) WithAll(on bool) MouseConfig {
	c.Drag, c.Rotate, c.Zoom = on, on, on
	return c
}

// WithPitchScale sets the pitch change per pixel of vertical movement.
func (c MouseConfig) WithPitchScale(s float64) MouseConfig {
	c.PitchScale = s
	return c
}

// WithYawScale sets the yaw change per pixel of horizontal movement.
func (c MouseConfig) WithYawScale(s float64) MouseConfig {
	c.YawScale = s
	return c
}

// WithZoomScale sets the zoom change per pixel of wheel movement.
func (c MouseConfig) WithZoomScale(s float64) MouseConfig {
	c.ZoomScale = s
	return c
}

// WithDragBind sets the button that pans.
func (c MouseConfig) WithDragBind(b MouseButton) MouseConfig {
	c.DragBind = b
	return c
}

// WithRotateBind sets the button that rotates.
func (c MouseConfig) WithRotateBind(b MouseButton) MouseConfig {
	c.RotateBind = b
	return c
}
