package ggplot

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/input"
)

// Region is the rectangular part of a UI a chart draws into.
type Region interface {
	// Bounds is the region's rectangle in painter coordinates.
	Bounds() gg.Rect
	// Painter draws into the region, clipped to Bounds.
	Painter() Painter
	// Input returns this frame's pointer input. It is called at most once
	// per frame.
	Input() input.Snapshot
}

// ContextRegion is a Region backed by a gg.Context.
type ContextRegion struct {
	bounds  gg.Rect
	painter *GGPainter
	input   input.Source
}

// RegionOption configures a ContextRegion.
type RegionOption func(*ContextRegion)

// WithInput sets where the region reads pointer input from. Without it the
// region reports no input.
func WithInput(src input.Source) RegionOption {
	return func(r *ContextRegion) {
		r.input = src
	}
}

// WithFonts sets the font resolver of the region's painter.
func WithFonts(fonts *FontResolver) RegionOption {
	return func(r *ContextRegion) {
		r.painter.fonts = fonts
	}
}

// NewContextRegion creates a region covering bounds of dc.
func NewContextRegion(dc *gg.Context, bounds gg.Rect, opts ...RegionOption) *ContextRegion {
	r := &ContextRegion{
		bounds:  bounds,
		painter: NewGGPainter(dc, bounds, nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.painter.fonts == nil {
		r.painter.fonts = DefaultFontResolver()
	}
	return r
}

// FullRegion creates a region covering all of dc.
func FullRegion(dc *gg.Context, opts ...RegionOption) *ContextRegion {
	bounds := gg.Rect{Max: gg.Pt(float64(dc.Width()), float64(dc.Height()))}
	return NewContextRegion(dc, bounds, opts...)
}

// Bounds implements Region.
func (r *ContextRegion) Bounds() gg.Rect {
	return r.bounds
}

// Painter implements Region.
func (r *ContextRegion) Painter() Painter {
	return r.painter
}

// Input implements Region.
func (r *ContextRegion) Input() input.Snapshot {
	if r.input == nil {
		return input.Snapshot{}
	}
	return r.input.Snapshot()
}
