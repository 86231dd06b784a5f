package ggplot

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggplot/internal/earcut"
)

// Backend draws chart primitives into a Region.
//
// Coordinates are integer pixels relative to the region's top-left corner.
// Before reaching the painter every point is scaled about the region's
// center, shifted by the offset and moved into the region:
//
//	p' = (p - c) * scale + c + offset + region.Min
//
// where c is the region's center relative to its top-left corner. All
// drawing is clipped to the region.
//
// A Backend is created per frame and is not safe for concurrent use.
type Backend struct {
	region Region
	x, y   int
	scale  float64
	fonts  *FontResolver
}

// NewBackend creates a backend for r with no offset and a scale of 1.
func NewBackend(r Region, opts ...BackendOption) *Backend {
	o := defaultBackendOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{region: r, scale: 1, fonts: o.fonts}
}

// SetOffset sets the translation applied after scaling.
func (b *Backend) SetOffset(x, y int) {
	b.x, b.y = x, y
}

// WithOffset sets the offset and returns b.
func (b *Backend) WithOffset(x, y int) *Backend {
	b.SetOffset(x, y)
	return b
}

// Offset returns the translation applied after scaling.
func (b *Backend) Offset() (x, y int) {
	return b.x, b.y
}

// SetScale sets the zoom factor applied about the region's center.
func (b *Backend) SetScale(s float64) {
	b.scale = s
}

// WithScale sets the scale and returns b.
func (b *Backend) WithScale(s float64) *Backend {
	b.SetScale(s)
	return b
}

// Scale returns the zoom factor.
func (b *Backend) Scale() float64 {
	return b.scale
}

// Region returns the region b draws into.
func (b *Backend) Region() Region {
	return b.region
}

// Size returns the region's width and height in whole pixels.
func (b *Backend) Size() (w, h int) {
	r := b.region.Bounds()
	return int(r.Width()), int(r.Height())
}

// EnsurePrepared readies the surface for drawing. Painting is immediate,
// so there is nothing to prepare.
func (b *Backend) EnsurePrepared() error {
	return nil
}

// Present finalizes the frame. Everything has already been handed to the
// painter, so it always succeeds.
func (b *Backend) Present() error {
	return nil
}

// Canvas returns a gonum drawing canvas covering the whole region. Plots
// drawn on it go through b's transform.
func (b *Backend) Canvas(opts ...CanvasOption) draw.Canvas {
	return draw.New(NewCanvas(b, opts...))
}

// transform maps a region-local point to painter coordinates.
func (b *Backend) transform(p gg.Point, bounds gg.Rect) gg.Point {
	c := gg.Pt(bounds.Width()/2, bounds.Height()/2)
	p = p.Sub(c).Mul(b.scale).Add(c)
	return p.Add(gg.Pt(float64(b.x), float64(b.y))).Add(bounds.Min)
}

func (b *Backend) transformInt(p image.Point, bounds gg.Rect) gg.Point {
	return b.transform(gg.Pt(float64(p.X), float64(p.Y)), bounds)
}

// DrawPixel plots a single pixel at p.
func (b *Backend) DrawPixel(p image.Point, c Color) error {
	bounds := b.region.Bounds()
	p0 := b.transformInt(p, bounds)
	b.region.Painter().LineSegment(p0, p0.Add(gg.Pt(1, 1)), Stroke{Width: 1, Color: c.NRGBA()})
	return nil
}

// DrawLine strokes a segment from one point to another.
func (b *Backend) DrawLine(from, to image.Point, s ShapeStyle) error {
	bounds := b.region.Bounds()
	b.region.Painter().LineSegment(b.transformInt(from, bounds), b.transformInt(to, bounds), s.Stroke())
	return nil
}

// DrawPath strokes an open polyline through path.
func (b *Backend) DrawPath(path []image.Point, s ShapeStyle) error {
	b.strokePoints(toPoints(path), s)
	return nil
}

// strokePoints strokes a polyline given in region-local coordinates.
func (b *Backend) strokePoints(path []gg.Point, s ShapeStyle) {
	bounds := b.region.Bounds()
	pts := make([]gg.Point, len(path))
	for i, p := range path {
		pts[i] = b.transform(p, bounds)
	}
	b.region.Painter().Polyline(pts, s.Stroke())
}

// FillPolygon fills the polygon outlined by vert. The outline may be
// concave. Outlines enclosing no area fail with ErrTriangulation and draw
// nothing.
func (b *Backend) FillPolygon(vert []image.Point, s ShapeStyle) error {
	return b.fillPoints(toPoints(vert), s)
}

// fillPoints fills a polygon given in region-local coordinates.
func (b *Backend) fillPoints(vert []gg.Point, s ShapeStyle) error {
	bounds := b.region.Bounds()
	pts := make([]gg.Point, len(vert))
	for i, p := range vert {
		pts[i] = b.transform(p, bounds)
	}
	tri, err := earcut.Triangulate(pts)
	if err != nil {
		return &DrawingError{Op: "fill polygon", Err: fmt.Errorf("%w: %w", ErrTriangulation, err)}
	}
	b.region.Painter().Mesh(&Mesh{Vertices: pts, Indices: tri, Color: s.Color.NRGBA()})
	return nil
}

func toPoints(path []image.Point) []gg.Point {
	pts := make([]gg.Point, len(path))
	for i, p := range path {
		pts[i] = gg.Pt(float64(p.X), float64(p.Y))
	}
	return pts
}

// DrawRect draws the rectangle spanned by two corners, filled or outlined.
func (b *Backend) DrawRect(upperLeft, bottomRight image.Point, s ShapeStyle, fill bool) error {
	bounds := b.region.Bounds()
	p0 := b.transformInt(upperLeft, bounds)
	p1 := b.transformInt(bottomRight, bounds)
	r := gg.Rect{
		Min: gg.Pt(math.Min(p0.X, p1.X), math.Min(p0.Y, p1.Y)),
		Max: gg.Pt(math.Max(p0.X, p1.X), math.Max(p0.Y, p1.Y)),
	}
	if fill {
		b.region.Painter().FillRect(r, s.Color.NRGBA())
	} else {
		b.region.Painter().StrokeRect(r, s.Stroke())
	}
	return nil
}

// DrawCircle draws a circle, filled or outlined. The radius is scaled but
// not offset.
func (b *Backend) DrawCircle(center image.Point, radius int, s ShapeStyle, fill bool) error {
	bounds := b.region.Bounds()
	c := b.transformInt(center, bounds)
	r := float64(radius) * b.scale
	if fill {
		b.region.Painter().FillCircle(c, r, s.Color.NRGBA())
	} else {
		b.region.Painter().StrokeCircle(c, r, s.Stroke())
	}
	return nil
}

// DrawImage draws img at its natural size with its top-left corner at
// upperLeft. The image is scaled by the backend's zoom.
func (b *Backend) DrawImage(upperLeft image.Point, img image.Image) error {
	if img == nil {
		return nil
	}
	ul := gg.Pt(float64(upperLeft.X), float64(upperLeft.Y))
	size := img.Bounds().Size()
	b.drawImage(ul, ul.Add(gg.Pt(float64(size.X), float64(size.Y))), img)
	return nil
}

// drawImage draws img stretched between two region-local corners.
func (b *Backend) drawImage(upperLeft, bottomRight gg.Point, img image.Image) {
	bounds := b.region.Bounds()
	p0 := b.transform(upperLeft, bounds)
	p1 := b.transform(bottomRight, bounds)
	b.region.Painter().Image(gg.Rect{Min: p0, Max: p1}, img)
}

// layout lays out text in the style's font and color.
func (b *Backend) layout(text string, s TextStyle) *Galley {
	font := hostFont(s.Family, s.Size)
	c := s.Color.NRGBA()
	if b.fonts == nil {
		return b.region.Painter().LayoutNoWrap(text, font, c)
	}
	if text == "" || font.Size <= 0 {
		return &Galley{Color: c}
	}
	face, err := b.fonts.Face(font)
	if err != nil {
		Logger().Warn("ggplot: no font face", "font", font.Name, "err", err)
		return &Galley{Color: c}
	}
	return layout(text, face, c)
}

// DrawText draws text with the style's anchor point at pos. Rotated text
// turns clockwise about the top-left corner of its unrotated box.
func (b *Backend) DrawText(text string, s TextStyle, pos image.Point) error {
	bounds := b.region.Bounds()
	p := b.transformInt(pos, bounds)

	anchor := Align2For(s.Anchor).Rotate(s.Rotation)
	galley := b.layout(text, s)
	if galley.IsEmpty() {
		return nil
	}
	rect := anchor.AnchorSize(p, galley.Size)
	b.region.Painter().Text(TextShape{
		Pos:    rect.Min,
		Galley: galley,
		Angle:  float64(s.Rotation%4) * math.Pi / 2,
	})
	return nil
}

// drawBaselineText draws text whose baseline starts at pos, a region-local
// point. The style's rotation applies; its anchor does not.
func (b *Backend) drawBaselineText(text string, s TextStyle, pos gg.Point) {
	galley := b.layout(text, s)
	if galley.IsEmpty() {
		return
	}
	angle := float64(s.Rotation%4) * math.Pi / 2
	p := b.transform(pos, b.region.Bounds())
	// Rotating the galley's top-left about itself moves its baseline
	// origin from (0, ascent) to this offset.
	up := gg.Pt(0, galley.Ascent).Rotate(angle)
	b.region.Painter().Text(TextShape{Pos: p.Sub(up), Galley: galley, Angle: angle})
}

// EstimateTextSize returns the unrotated size of text in whole pixels.
func (b *Backend) EstimateTextSize(text string, s TextStyle) (w, h int, err error) {
	g := b.layout(text, s)
	if g.IsEmpty() {
		return 0, 0, nil
	}
	return int(math.Ceil(g.Size.X)), int(math.Ceil(g.Size.Y)), nil
}
