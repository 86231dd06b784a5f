package ggplot

import "github.com/gogpu/gg"

// Align is a position along one axis: the minimum edge, the center or the
// maximum edge.
type Align uint8

// Axis alignments.
const (
	AlignMin Align = iota
	AlignCenter
	AlignMax
)

// factor returns how far along the extent the aligned point lies.
func (a Align) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignMax:
		return 1
	default:
		return 0
	}
}

// Align2 is a two-dimensional alignment: X then Y.
type Align2 [2]Align

// The nine canonical anchors.
var (
	LeftTop      = Align2{AlignMin, AlignMin}
	CenterTop    = Align2{AlignCenter, AlignMin}
	RightTop     = Align2{AlignMax, AlignMin}
	LeftCenter   = Align2{AlignMin, AlignCenter}
	CenterCenter = Align2{AlignCenter, AlignCenter}
	RightCenter  = Align2{AlignMax, AlignCenter}
	LeftBottom   = Align2{AlignMin, AlignMax}
	CenterBottom = Align2{AlignCenter, AlignMax}
	RightBottom  = Align2{AlignMax, AlignMax}
)

// quarterTurn maps every anchor to the anchor it becomes after the text is
// turned a quarter clockwise. Corners and edge midpoints each form a
// four-cycle; the center is fixed.
var quarterTurn = map[Align2]Align2{
	LeftTop:      RightTop,
	RightTop:     RightBottom,
	RightBottom:  LeftBottom,
	LeftBottom:   LeftTop,
	LeftCenter:   CenterTop,
	CenterTop:    RightCenter,
	RightCenter:  CenterBottom,
	CenterBottom: LeftCenter,
	CenterCenter: CenterCenter,
}

// Align2For converts a text anchor to an Align2.
func Align2For(a Anchor) Align2 {
	var out Align2
	switch a.H {
	case HCenter:
		out[0] = AlignCenter
	case HRight:
		out[0] = AlignMax
	default:
		out[0] = AlignMin
	}
	switch a.V {
	case VCenter:
		out[1] = AlignCenter
	case VBottom:
		out[1] = AlignMax
	default:
		out[1] = AlignMin
	}
	return out
}

// Rotate returns the anchor after r clockwise quarter turns.
func (a Align2) Rotate(r Rotation) Align2 {
	for range int(r % 4) {
		a = quarterTurn[a]
	}
	return a
}

// AnchorSize returns the rectangle of the given size positioned so that its
// a-aligned point sits at pos.
func (a Align2) AnchorSize(pos gg.Point, size gg.Point) gg.Rect {
	minPt := gg.Pt(pos.X-size.X*a[0].factor(), pos.Y-size.Y*a[1].factor())
	return gg.Rect{Min: minPt, Max: minPt.Add(size)}
}
