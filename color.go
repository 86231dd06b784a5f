package ggplot

import (
	"image/color"
	"math"
)

// Color is the color a chart primitive is drawn with: 8-bit RGB channels
// plus a separate alpha in [0, 1].
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Alpha: 1}
}

// ColorFrom converts any color.Color to a Color, un-premultiplying it.
// A nil color converts to opaque black, matching gonum's vg.Canvas.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return RGB(0, 0, 0)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, Alpha: float64(n.A) / 255}
}

// Mix returns c with its alpha multiplied by a.
func (c Color) Mix(a float64) Color {
	c.Alpha *= a
	return c
}

// NRGBA converts c to an un-premultiplied host color. Alpha is clamped to
// [0, 1] and truncated to 8 bits.
func (c Color) NRGBA() color.NRGBA {
	a := math.Max(0, math.Min(1, c.Alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
