package ggplot

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/input"
)

// paintOp is one call recorded by mockPainter.
type paintOp struct {
	kind   string
	points []gg.Point
	rect   gg.Rect
	radius float64
	stroke Stroke
	color  color.Color
	mesh   *Mesh
	text   TextShape
	image  image.Image
}

// mockPainter records every painter call. Text is laid out with a fixed
// advance of 10px per byte, a height of 20px and an ascent of 16px.
type mockPainter struct {
	ops     []paintOp
	layouts []FontID
}

func (m *mockPainter) LineSegment(a, b gg.Point, s Stroke) {
	m.ops = append(m.ops, paintOp{kind: "line", points: []gg.Point{a, b}, stroke: s})
}

func (m *mockPainter) Polyline(points []gg.Point, s Stroke) {
	pts := append([]gg.Point(nil), points...)
	m.ops = append(m.ops, paintOp{kind: "polyline", points: pts, stroke: s})
}

func (m *mockPainter) FillRect(r gg.Rect, c color.Color) {
	m.ops = append(m.ops, paintOp{kind: "fillrect", rect: r, color: c})
}

func (m *mockPainter) StrokeRect(r gg.Rect, s Stroke) {
	m.ops = append(m.ops, paintOp{kind: "strokerect", rect: r, stroke: s})
}

func (m *mockPainter) FillCircle(center gg.Point, radius float64, c color.Color) {
	m.ops = append(m.ops, paintOp{kind: "fillcircle", points: []gg.Point{center}, radius: radius, color: c})
}

func (m *mockPainter) StrokeCircle(center gg.Point, radius float64, s Stroke) {
	m.ops = append(m.ops, paintOp{kind: "strokecircle", points: []gg.Point{center}, radius: radius, stroke: s})
}

func (m *mockPainter) Mesh(mesh *Mesh) {
	m.ops = append(m.ops, paintOp{kind: "mesh", mesh: mesh, color: mesh.Color})
}

func (m *mockPainter) LayoutNoWrap(s string, font FontID, c color.Color) *Galley {
	m.layouts = append(m.layouts, font)
	if s == "" {
		return &Galley{Color: c}
	}
	return &Galley{Text: s, Color: c, Size: gg.Pt(float64(10*len(s)), 20), Ascent: 16}
}

func (m *mockPainter) Text(shape TextShape) {
	m.ops = append(m.ops, paintOp{kind: "text", text: shape})
}

func (m *mockPainter) Image(r gg.Rect, img image.Image) {
	m.ops = append(m.ops, paintOp{kind: "image", rect: r, image: img})
}

// byKind returns the recorded operations of one kind.
func (m *mockPainter) byKind(kind string) []paintOp {
	var out []paintOp
	for _, op := range m.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// mockRegion is a Region with a fixed rectangle, a recording painter and
// queued input snapshots, one per Input call.
type mockRegion struct {
	bounds  gg.Rect
	painter *mockPainter
	inputs  []input.Snapshot
	reads   int
}

func newMockRegion(x, y, w, h float64) *mockRegion {
	return &mockRegion{
		bounds:  gg.Rect{Min: gg.Pt(x, y), Max: gg.Pt(x+w, y+h)},
		painter: &mockPainter{},
	}
}

func (r *mockRegion) Bounds() gg.Rect  { return r.bounds }
func (r *mockRegion) Painter() Painter { return r.painter }

func (r *mockRegion) Input() input.Snapshot {
	r.reads++
	if len(r.inputs) == 0 {
		return input.Snapshot{}
	}
	s := r.inputs[0]
	r.inputs = r.inputs[1:]
	return s
}

func approx(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func approxPt(a, b gg.Point, eps float64) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps)
}
