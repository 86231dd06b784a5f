package ggplot

import (
	"fmt"
	"math"
)

// BuilderFunc draws one frame of a chart. It receives a backend already
// carrying the chart's offset and scale, the current transform for manual
// 3D projection, and the chart's data.
type BuilderFunc[D any] func(b *Backend, t Transform, data D) error

// Chart is an interactive chart: it turns pointer input into pan, zoom and
// rotation and redraws its data through a builder every frame.
//
//	chart := ggplot.NewChart(points).
//		WithMouse(ggplot.EnabledMouseConfig()).
//		WithBuilder(func(b *ggplot.Backend, t ggplot.Transform, pts plotter.XYs) error {
//			...
//		})
//	// each frame:
//	err := chart.Draw(region)
//
// A Chart is used from a single goroutine.
type Chart[D any] struct {
	transform Transform
	mouse     MouseConfig
	builder   BuilderFunc[D]
	data      D
	opts      []BackendOption
}

// NewChart creates a chart with the default transform, all mouse
// interactions off and no builder.
func NewChart[D any](data D) *Chart[D] {
	return &Chart[D]{
		transform: DefaultTransform(),
		mouse:     DefaultMouseConfig(),
		data:      data,
	}
}

// Transform returns the chart's current pitch, yaw, zoom and pan.
func (c *Chart[D]) Transform() Transform { return c.transform }

// SetTransform replaces the chart's transform.
func (c *Chart[D]) SetTransform(t Transform) { c.transform = t }

// Pitch returns the rotation about the horizontal axis, in radians.
func (c *Chart[D]) Pitch() float64 { return c.transform.Pitch }

// SetPitch sets the rotation about the horizontal axis, in radians.
func (c *Chart[D]) SetPitch(p float64) { c.transform.Pitch = p }

// Yaw returns the rotation about the vertical axis, in radians.
func (c *Chart[D]) Yaw() float64 { return c.transform.Yaw }

// SetYaw sets the rotation about the vertical axis, in radians.
func (c *Chart[D]) SetYaw(y float64) { c.transform.Yaw = y }

// Scale returns the zoom factor.
func (c *Chart[D]) Scale() float64 { return c.transform.Scale }

// SetScale sets the zoom factor.
func (c *Chart[D]) SetScale(s float64) { c.transform.Scale = s }

// Offset returns the pan offset in pixels.
func (c *Chart[D]) Offset() (x, y int) { return c.transform.X, c.transform.Y }

// SetOffset sets the pan offset in pixels.
func (c *Chart[D]) SetOffset(x, y int) { c.transform.X, c.transform.Y = x, y }

// Mouse returns the chart's mouse bindings.
func (c *Chart[D]) Mouse() MouseConfig { return c.mouse }

// SetMouse sets the chart's mouse bindings.
func (c *Chart[D]) SetMouse(m MouseConfig) { c.mouse = m }

// SetBuilder sets the function that draws each frame. A chart without a
// builder only presents its region.
func (c *Chart[D]) SetBuilder(f BuilderFunc[D]) { c.builder = f }

// Data returns the chart's data.
func (c *Chart[D]) Data() D { return c.data }

// SetData replaces the chart's data.
func (c *Chart[D]) SetData(d D) { c.data = d }

// SetBackendOptions sets the options used for the backend of every frame.
func (c *Chart[D]) SetBackendOptions(opts ...BackendOption) { c.opts = opts }

// WithTransform is SetTransform returning c for chaining.
func (c *Chart[D]) WithTransform(t Transform) *Chart[D] {
	c.SetTransform(t)
	return c
}

// WithPitch is SetPitch returning c for chaining.
func (c *Chart[D]) WithPitch(p float64) *Chart[D] {
	c.SetPitch(p)
	return c
}

// WithYaw is SetYaw returning c for chaining.
func (c *Chart[D]) WithYaw(y float64) *Chart[D] {
	c.SetYaw(y)
	return c
}

// WithScale is SetScale returning c for chaining.
func (c *Chart[D]) WithScale(s float64) *Chart[D] {
	c.SetScale(s)
	return c
}

// WithOffset is SetOffset returning c for chaining.
func (c *Chart[D]) WithOffset(x, y int) *Chart[D] {
	c.SetOffset(x, y)
	return c
}

// WithMouse is SetMouse returning c for chaining.
func (c *Chart[D]) WithMouse(m MouseConfig) *Chart[D] {
	c.SetMouse(m)
	return c
}

// WithBuilder is SetBuilder returning c for chaining.
func (c *Chart[D]) WithBuilder(f BuilderFunc[D]) *Chart[D] {
	c.SetBuilder(f)
	return c
}

// WithData is SetData returning c for chaining.
func (c *Chart[D]) WithData(d D) *Chart[D] {
	c.SetData(d)
	return c
}

// WithBackendOptions is SetBackendOptions returning c for chaining.
func (c *Chart[D]) WithBackendOptions(opts ...BackendOption) *Chart[D] {
	c.SetBackendOptions(opts...)
	return c
}

// Draw applies this frame's input to the transform and redraws the chart
// into r. Builder errors are returned after the frame is presented.
func (c *Chart[D]) Draw(r Region) error {
	c.update(r)

	b := NewBackend(r, c.opts...).
		WithOffset(c.transform.X, c.transform.Y).
		WithScale(c.transform.Scale)

	var err error
	if c.builder != nil {
		if berr := c.builder(b, c.transform, c.data); berr != nil {
			err = fmt.Errorf("ggplot: chart builder: %w", berr)
		}
	}
	if perr := b.Present(); perr != nil && err == nil {
		err = perr
	}
	return err
}

// update reads r's input once and moves the transform accordingly.
func (c *Chart[D]) update(r Region) {
	m := c.mouse
	in := r.Input()
	before := c.transform
	t := &c.transform

	if m.Rotate && m.RotateBind.IsDown(in) {
		t.Pitch += in.Delta.Y * m.PitchScale
		t.Yaw += -(in.Delta.X * m.YawScale)
	}
	if m.Drag && m.DragBind.IsDown(in) {
		t.X += int(in.Delta.X)
		t.Y += int(in.Delta.Y)
	}
	if m.Zoom {
		if s := math.Abs(t.Scale + in.Scroll.Y*m.ZoomScale); !math.IsNaN(s) && !math.IsInf(s, 0) {
			t.Scale = s
		}
	}

	if *t != before {
		Logger().Debug("ggplot: transform updated",
			"pitch", t.Pitch, "yaw", t.Yaw, "scale", t.Scale, "x", t.X, "y", t.Y)
	}
}
