package ggplot

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// flattenTolerance is the largest distance, in pixels, between a curve and
// the polyline that replaces it.
const flattenTolerance = 0.25

// Canvas adapts a Backend to gonum/plot's vg.CanvasSizer, so any gonum plot
// can be drawn into a chart region.
//
// User space is gonum's: lengths in points with the origin at the bottom
// left and Y up. It covers the backend's whole region, so plots drawn on a
// Canvas pan and zoom with the backend.
type Canvas struct {
	b     *Backend
	dpi   float64
	h     float64 // region height in pixels
	w     float64
	state canvasState
	stack []canvasState
}

var _ vg.CanvasSizer = (*Canvas)(nil)

type canvasState struct {
	m          gg.Matrix
	color      Color
	width      vg.Length
	dashes     []vg.Length
	dashOffset vg.Length
}

// NewCanvas creates a canvas drawing through b.
func NewCanvas(b *Backend, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w, h := b.Size()
	c := &Canvas{b: b, dpi: o.dpi, w: float64(w), h: float64(h)}
	k := o.dpi / vg.Inch.Points()
	c.state = canvasState{
		m:     gg.Translate(0, c.h).Multiply(gg.Scale(k, -k)),
		color: RGB(0, 0, 0),
		width: vg.Points(1),
	}
	return c
}

// DPI returns the canvas resolution.
func (c *Canvas) DPI() float64 {
	return c.dpi
}

// Size implements vg.CanvasSizer.
func (c *Canvas) Size() (x, y vg.Length) {
	k := vg.Inch.Points() / c.dpi
	return vg.Points(c.w * k), vg.Points(c.h * k)
}

// SetLineWidth implements vg.Canvas.
func (c *Canvas) SetLineWidth(w vg.Length) {
	c.state.width = w
}

// SetLineDash implements vg.Canvas.
func (c *Canvas) SetLineDash(pattern []vg.Length, offset vg.Length) {
	c.state.dashes = append([]vg.Length(nil), pattern...)
	c.state.dashOffset = offset
}

// SetColor implements vg.Canvas. A nil color is black.
func (c *Canvas) SetColor(col color.Color) {
	c.state.color = ColorFrom(col)
}

// Rotate implements vg.Canvas.
func (c *Canvas) Rotate(rad float64) {
	c.state.m = c.state.m.Multiply(gg.Rotate(rad))
}

// Translate implements vg.Canvas.
func (c *Canvas) Translate(pt vg.Point) {
	c.state.m = c.state.m.Multiply(gg.Translate(pt.X.Points(), pt.Y.Points()))
}

// Scale implements vg.Canvas.
func (c *Canvas) Scale(x, y float64) {
	c.state.m = c.state.m.Multiply(gg.Scale(x, y))
}

// Push implements vg.Canvas.
func (c *Canvas) Push() {
	st := c.state
	st.dashes = append([]vg.Length(nil), c.state.dashes...)
	c.stack = append(c.stack, st)
}

// Pop implements vg.Canvas. Popping an empty stack does nothing.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Stroke implements vg.Canvas.
func (c *Canvas) Stroke(p vg.Path) {
	width := c.state.width.Points() * c.linearScale()
	if width <= 0 {
		return
	}
	style := ShapeStyle{Color: c.state.color, StrokeWidth: width}
	style.Dashes, style.DashOffset = c.deviceDashes()
	for _, sp := range c.paths(p) {
		pts := sp.Flatten(flattenTolerance)
		if len(pts) < 2 {
			continue
		}
		c.b.strokePoints(pts, style)
	}
}

// Fill implements vg.Canvas. Sub-paths that enclose no area are skipped.
func (c *Canvas) Fill(p vg.Path) {
	style := ShapeStyle{Color: c.state.color, Filled: true}
	for _, sp := range c.paths(p) {
		pts := sp.Flatten(flattenTolerance)
		if n := len(pts); n > 1 && pts[0] == pts[n-1] {
			pts = pts[:n-1]
		}
		if err := c.b.fillPoints(pts, style); err != nil {
			Logger().Debug("ggplot: skipping degenerate fill", "points", len(pts), "err", err)
		}
	}
}

// FillString implements vg.Canvas. The text is drawn upright or turned by
// the nearest quarter turn of the current transform.
func (c *Canvas) FillString(f font.Face, pt vg.Point, text string) {
	if f.Font.Size == 0 || text == "" {
		return
	}
	ts := TextStyle{
		Size:     f.Font.Size.Points() * c.linearScale(),
		Family:   canvasFamily(f.Font),
		Color:    c.state.color,
		Rotation: c.quarterTurns(),
	}
	c.b.drawBaselineText(text, ts, c.device(pt))
}

// DrawImage implements vg.Canvas.
func (c *Canvas) DrawImage(rect vg.Rectangle, img image.Image) {
	p0 := c.device(rect.Min)
	p1 := c.device(rect.Max)
	ul := gg.Pt(math.Min(p0.X, p1.X), math.Min(p0.Y, p1.Y))
	br := gg.Pt(math.Max(p0.X, p1.X), math.Max(p0.Y, p1.Y))
	c.b.drawImage(ul, br, img)
}

// device maps a user-space point to region-local pixels.
func (c *Canvas) device(pt vg.Point) gg.Point {
	return c.state.m.TransformPoint(gg.Pt(pt.X.Points(), pt.Y.Points()))
}

// linearScale is how many pixels one user-space point spans.
func (c *Canvas) linearScale() float64 {
	m := c.state.m
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// quarterTurns returns the current rotation, clockwise on screen, rounded
// to quarter turns.
func (c *Canvas) quarterTurns() Rotation {
	m := c.state.m
	q := int(math.Round(math.Atan2(m.D, m.A) / (math.Pi / 2)))
	return Rotation(((q % 4) + 4) % 4)
}

// deviceDashes returns the dash pattern and offset in pixels.
func (c *Canvas) deviceDashes() ([]float64, float64) {
	if len(c.state.dashes) == 0 {
		return nil, 0
	}
	k := c.linearScale()
	out := make([]float64, len(c.state.dashes))
	var sum float64
	for i, d := range c.state.dashes {
		out[i] = math.Max(d.Points()*k, 0)
		sum += out[i]
	}
	if sum <= 0 {
		return nil, 0
	}
	return out, c.state.dashOffset.Points() * k
}

// canvasFamily picks the font family for a gonum font.
func canvasFamily(f font.Font) FontFamily {
	switch f.Typeface {
	case "", "Liberation":
		variant := f.Variant
		if variant == "" {
			variant = "Serif"
		}
		return FontFamily("Liberation " + string(variant))
	default:
		if f.Variant != "" {
			return FontFamily(string(f.Typeface) + " " + string(f.Variant))
		}
		return FontFamily(f.Typeface)
	}
}

// paths converts p to device-space gg paths, one per sub-path.
func (c *Canvas) paths(p vg.Path) []*gg.Path {
	var (
		out   []*gg.Path
		cur   = gg.NewPath()
		start gg.Point
	)
	flush := func() {
		if cur.NumVerbs() > 0 {
			out = append(out, cur.Transform(c.state.m))
		}
		cur = gg.NewPath()
	}
	// A component without a preceding Move continues from the last start.
	begin := func() {
		if cur.NumVerbs() == 0 {
			cur.MoveTo(start.X, start.Y)
		}
	}
	for _, comp := range p {
		switch comp.Type {
		case vg.MoveComp:
			flush()
			start = userPoint(comp.Pos)
			cur.MoveTo(start.X, start.Y)
		case vg.LineComp:
			begin()
			pt := userPoint(comp.Pos)
			cur.LineTo(pt.X, pt.Y)
		case vg.ArcComp:
			if cur.NumVerbs() == 0 {
				start = arcPoint(comp, comp.Start)
			}
			appendArc(cur, comp)
		case vg.CurveComp:
			begin()
			pt := userPoint(comp.Pos)
			switch len(comp.Control) {
			case 1:
				c1 := userPoint(comp.Control[0])
				cur.QuadraticTo(c1.X, c1.Y, pt.X, pt.Y)
			case 2:
				c1, c2 := userPoint(comp.Control[0]), userPoint(comp.Control[1])
				cur.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			default:
				cur.LineTo(pt.X, pt.Y)
			}
		case vg.CloseComp:
			if cur.NumVerbs() > 0 {
				cur.Close()
				flush()
			}
		}
	}
	flush()
	return out
}

func userPoint(pt vg.Point) gg.Point {
	return gg.Pt(pt.X.Points(), pt.Y.Points())
}

// arcPoint is the point of an arc component's circle at angle a.
func arcPoint(comp vg.PathComp, a float64) gg.Point {
	r := comp.Radius.Points()
	return userPoint(comp.Pos).Add(gg.Pt(r*math.Cos(a), r*math.Sin(a)))
}

// appendArc adds an arc component to p, joined to the current point by a
// line. gg.Path.Arc sweeps counter-clockwise only, so a clockwise arc is
// built over the same span and its segments are appended in reverse.
func appendArc(p *gg.Path, comp vg.PathComp) {
	from := arcPoint(comp, comp.Start)
	switch {
	case p.NumVerbs() == 0:
		p.MoveTo(from.X, from.Y)
	case p.CurrentPoint() != from:
		p.LineTo(from.X, from.Y)
	}
	if comp.Angle == 0 || comp.Radius <= 0 {
		return
	}

	c, r := userPoint(comp.Pos), comp.Radius.Points()
	a0, a1 := comp.Start, comp.Start+comp.Angle
	if comp.Angle < 0 {
		a0, a1 = a1, a0
	}
	arc := gg.NewPath()
	arc.Arc(c.X, c.Y, r, a0, a1)
	var segs [][6]float64
	arc.Iterate(func(verb gg.PathVerb, coords []float64) {
		if verb == gg.CubicTo {
			segs = append(segs, [6]float64(coords))
		}
	})

	if comp.Angle > 0 {
		for _, sg := range segs {
			p.CubicTo(sg[0], sg[1], sg[2], sg[3], sg[4], sg[5])
		}
		return
	}
	for i := len(segs) - 1; i >= 0; i-- {
		end := arcPoint(comp, a0)
		if i > 0 {
			end = gg.Pt(segs[i-1][4], segs[i-1][5])
		}
		sg := segs[i]
		p.CubicTo(sg[2], sg[3], sg[0], sg[1], end.X, end.Y)
	}
}
