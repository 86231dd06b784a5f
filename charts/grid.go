package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// meshGrid draws lines at the major ticks of both axes and thinner lines
// at the minor ones.
type meshGrid struct {
	major draw.LineStyle
	minor draw.LineStyle
}

// Plot implements plot.Plotter.
func (g meshGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	// Minor lines first so major lines stay on top.
	for _, minor := range []bool{true, false} {
		sty := g.major
		if minor {
			sty = g.minor
		}
		if sty.Color == nil || sty.Width <= 0 {
			continue
		}
		for _, tk := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
			if tk.IsMinor() != minor {
				continue
			}
			x := trX(tk.Value)
			if x < c.Min.X || x > c.Max.X {
				continue
			}
			c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)
		}
		for _, tk := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
			if tk.IsMinor() != minor {
				continue
			}
			y := trY(tk.Value)
			if y < c.Min.Y || y > c.Max.Y {
				continue
			}
			c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
		}
	}
}
