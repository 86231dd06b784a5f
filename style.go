package ggplot

// ShapeStyle describes how lines, paths and shapes are drawn.
type ShapeStyle struct {
	Color       Color
	Filled      bool
	StrokeWidth float64
	// Dashes alternates on and off lengths in pixels, starting with on.
	// Empty means a solid line.
	Dashes     []float64
	DashOffset float64
}

// Stroke returns the style's stroke: its color, width and dash pattern.
func (s ShapeStyle) Stroke() Stroke {
	return Stroke{
		Width:      s.StrokeWidth,
		Color:      s.Color.NRGBA(),
		Dashes:     s.Dashes,
		DashOffset: s.DashOffset,
	}
}

// FontFamily names the typeface of a TextStyle. The three generic families
// below are recognized; any other value names a concrete family.
type FontFamily string

// Generic font families.
const (
	FamilySerif     FontFamily = "serif"
	FamilySansSerif FontFamily = "sans-serif"
	FamilyMonospace FontFamily = "monospace"
)

// Rotation is a clockwise text rotation in quarter turns.
type Rotation uint8

// Supported text rotations.
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// HPos is the horizontal component of a text anchor.
type HPos uint8

// Horizontal anchor positions.
const (
	HLeft HPos = iota
	HCenter
	HRight
)

// VPos is the vertical component of a text anchor.
type VPos uint8

// Vertical anchor positions.
const (
	VTop VPos = iota
	VCenter
	VBottom
)

// Anchor says which point of the text's bounding box sits at the draw
// position.
type Anchor struct {
	H HPos
	V VPos
}

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Size     float64
	Family   FontFamily
	Color    Color
	Rotation Rotation
	Anchor   Anchor
}
