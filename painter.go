package ggplot

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Painter is the immediate-mode surface of a UI region. Every operation is
// queued or drawn immediately and none of them can fail.
//
// GGPainter implements Painter over a gg.Context. Other hosts, and tests,
// can supply their own.
type Painter interface {
	// LineSegment strokes a single segment from a to b.
	LineSegment(a, b gg.Point, s Stroke)

	// Polyline strokes an open path through points.
	Polyline(points []gg.Point, s Stroke)

	// FillRect fills r with c.
	FillRect(r gg.Rect, c color.Color)

	// StrokeRect outlines r.
	StrokeRect(r gg.Rect, s Stroke)

	// FillCircle fills the circle of the given center and radius.
	FillCircle(center gg.Point, radius float64, c color.Color)

	// StrokeCircle outlines the circle of the given center and radius.
	StrokeCircle(center gg.Point, radius float64, s Stroke)

	// Mesh fills every triangle of m.
	Mesh(m *Mesh)

	// LayoutNoWrap lays out s on a single line.
	LayoutNoWrap(s string, font FontID, c color.Color) *Galley

	// Text draws a laid-out galley.
	Text(shape TextShape)

	// Image draws img scaled into r.
	Image(r gg.Rect, img image.Image)
}

// Stroke is a line width, color and optional dash pattern.
type Stroke struct {
	Width float64
	Color color.Color
	// Dashes alternates on and off lengths, starting with on. The offset
	// shifts the pattern's start along the line.
	Dashes     []float64
	DashOffset float64
}

// Mesh is an indexed triangle list with a single fill color.
type Mesh struct {
	Vertices []gg.Point
	Indices  []uint32
	Color    color.Color
}

// AddTriangle appends the triangle a, b, c (vertex indices).
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// Triangles returns the number of triangles in m.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// FontKind is the host's notion of a font family.
type FontKind uint8

// Host font kinds.
const (
	FontProportional FontKind = iota
	FontMonospace
	FontNamed
)

// FontID selects a host font: a family and a size in pixels.
type FontID struct {
	Size float64
	Kind FontKind
	// Name is the family name for FontNamed and empty otherwise.
	Name string
}

// hostFont maps a chart font family onto the host's font families.
func hostFont(family FontFamily, size float64) FontID {
	switch family {
	case FamilySerif, FamilySansSerif, "":
		return FontID{Size: size, Kind: FontProportional}
	case FamilyMonospace:
		return FontID{Size: size, Kind: FontMonospace}
	default:
		return FontID{Size: size, Kind: FontNamed, Name: string(family)}
	}
}

// Galley is a single line of laid-out text.
type Galley struct {
	Text  string
	Face  text.Face
	Color color.Color
	// Size is the width and height of the laid-out line.
	Size gg.Point
	// Ascent is the distance from the top of the line to the baseline.
	Ascent float64
}

// IsEmpty reports whether the galley has nothing to draw.
func (g *Galley) IsEmpty() bool {
	return g == nil || g.Text == ""
}

// TextShape places a galley: its top-left corner sits at Pos and the text
// is rotated clockwise by Angle radians around that point.
type TextShape struct {
	Pos    gg.Point
	Galley *Galley
	Angle  float64
}
