package ggplot

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// GGPainter paints onto a gg.Context, clipped to a rectangle.
//
// Every operation saves the context state, clips, draws and restores, so a
// GGPainter never leaks transform, clip or dash changes into the caller's
// context.
type GGPainter struct {
	dc    *gg.Context
	clip  gg.Rect
	fonts *FontResolver
}

// NewGGPainter creates a painter drawing into dc, clipped to clip. A nil
// fonts uses DefaultFontResolver.
func NewGGPainter(dc *gg.Context, clip gg.Rect, fonts *FontResolver) *GGPainter {
	if fonts == nil {
		fonts = DefaultFontResolver()
	}
	return &GGPainter{dc: dc, clip: clip, fonts: fonts}
}

// Clip returns the clip rectangle.
func (p *GGPainter) Clip() gg.Rect {
	return p.clip
}

// Context returns the underlying gg context.
func (p *GGPainter) Context() *gg.Context {
	return p.dc
}

func (p *GGPainter) begin() {
	p.dc.Push()
	p.dc.ClearPath()
	p.dc.ClipRect(p.clip.Min.X, p.clip.Min.Y, p.clip.Width(), p.clip.Height())
}

func (p *GGPainter) end() {
	p.dc.ClearPath()
	p.dc.Pop()
}

func (p *GGPainter) stroke(s Stroke) {
	p.dc.SetLineWidth(s.Width)
	p.dc.SetColor(orBlack(s.Color))
	p.dc.SetLineCap(gg.LineCapButt)
	if len(s.Dashes) > 0 {
		p.dc.SetDash(s.Dashes...)
		p.dc.SetDashOffset(s.DashOffset)
		// Push and Pop do not restore the dash.
		defer p.dc.ClearDash()
	}
	if err := p.dc.Stroke(); err != nil {
		Logger().Debug("ggplot: stroke failed", "err", err)
	}
}

func (p *GGPainter) fill(c color.Color) {
	p.dc.SetColor(orBlack(c))
	if err := p.dc.Fill(); err != nil {
		Logger().Debug("ggplot: fill failed", "err", err)
	}
}

// LineSegment implements Painter.
func (p *GGPainter) LineSegment(a, b gg.Point, s Stroke) {
	if s.Width <= 0 {
		return
	}
	p.begin()
	defer p.end()
	p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	p.stroke(s)
}

// Polyline implements Painter.
func (p *GGPainter) Polyline(points []gg.Point, s Stroke) {
	if len(points) < 2 || s.Width <= 0 {
		return
	}
	p.begin()
	defer p.end()
	p.dc.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.stroke(s)
}

// FillRect implements Painter.
func (p *GGPainter) FillRect(r gg.Rect, c color.Color) {
	p.begin()
	defer p.end()
	p.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	p.fill(c)
}

// StrokeRect implements Painter.
func (p *GGPainter) StrokeRect(r gg.Rect, s Stroke) {
	if s.Width <= 0 {
		return
	}
	p.begin()
	defer p.end()
	p.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	p.stroke(s)
}

// FillCircle implements Painter.
func (p *GGPainter) FillCircle(center gg.Point, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	p.begin()
	defer p.end()
	p.dc.DrawCircle(center.X, center.Y, radius)
	p.fill(c)
}

// StrokeCircle implements Painter.
func (p *GGPainter) StrokeCircle(center gg.Point, radius float64, s Stroke) {
	if radius <= 0 || s.Width <= 0 {
		return
	}
	p.begin()
	defer p.end()
	p.dc.DrawCircle(center.X, center.Y, radius)
	p.stroke(s)
}

// Mesh implements Painter. All triangles are added as sub-paths of one path
// and filled with the nonzero rule, so shared edges leave no seams.
func (p *GGPainter) Mesh(m *Mesh) {
	if m == nil || m.Triangles() == 0 {
		return
	}
	p.begin()
	defer p.end()
	p.dc.SetFillRule(gg.FillRuleNonZero)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		// Consistent winding keeps nonzero from cancelling overlaps.
		if cross(a, b, c) < 0 {
			b, c = c, b
		}
		p.dc.MoveTo(a.X, a.Y)
		p.dc.LineTo(b.X, b.Y)
		p.dc.LineTo(c.X, c.Y)
		p.dc.ClosePath()
	}
	p.fill(m.Color)
}

// LayoutNoWrap implements Painter. If no face can be resolved for font the
// galley is empty.
func (p *GGPainter) LayoutNoWrap(s string, font FontID, c color.Color) *Galley {
	if s == "" || font.Size <= 0 {
		return &Galley{Color: c}
	}
	face, err := p.fonts.Face(font)
	if err != nil {
		Logger().Warn("ggplot: no font face", "font", font.Name, "err", err)
		return &Galley{Color: c}
	}
	return layout(s, face, c)
}

func layout(s string, face text.Face, c color.Color) *Galley {
	m := face.Metrics()
	return &Galley{
		Text:   s,
		Face:   face,
		Color:  c,
		Size:   gg.Pt(face.Advance(s), m.Ascent+m.Descent),
		Ascent: m.Ascent,
	}
}

// Text implements Painter.
func (p *GGPainter) Text(shape TextShape) {
	g := shape.Galley
	if g.IsEmpty() || g.Face == nil {
		return
	}
	p.begin()
	defer p.end()
	p.dc.Translate(shape.Pos.X, shape.Pos.Y)
	if shape.Angle != 0 {
		p.dc.Rotate(shape.Angle)
	}
	p.dc.SetFont(g.Face)
	p.dc.SetColor(orBlack(g.Color))
	p.dc.DrawString(g.Text, 0, g.Ascent)
}

// Image implements Painter.
func (p *GGPainter) Image(r gg.Rect, img image.Image) {
	if img == nil || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	buf := gg.ImageBufFromImage(img)
	if buf == nil {
		return
	}
	p.begin()
	defer p.end()
	p.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:         r.Min.X,
		Y:         r.Min.Y,
		DstWidth:  r.Width(),
		DstHeight: r.Height(),
	})
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

// cross is the z component of (b-a) x (c-a).
func cross(a, b, c gg.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
