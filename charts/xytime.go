package charts

import (
	"cmp"
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
	"sort"

	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggplot"
)

// ErrNoPoints is returned when a chart is created without points.
var ErrNoPoints = errors.New("charts: no points")

// DefaultRatio is the default number of Y units shown per X unit.
const DefaultRatio = 1.0

// Layout in pixels.
const (
	xMargin     = 25
	yMargin     = 25
	labelArea   = 25
	captionSize = 10
	tickSize    = 4
)

// Default styles.
var (
	defaultLineColor    = color.NRGBA{R: 0xb7, G: 0x1c, B: 0x1c, A: 0xff}
	defaultGridColor    = color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	defaultSubgridColor = color.NRGBA{R: 0x61, G: 0x61, B: 0x61, A: 0xff}
)

// px converts a length in pixels to gonum points at ggplot.DefaultDPI.
func px(n float64) vg.Length {
	return vg.Length(n) * vg.Inch / ggplot.DefaultDPI
}

// TimePoint is a point that appears at time T, in seconds.
type TimePoint struct {
	X, Y, T float64
}

// Range is a closed interval of data values.
type Range struct {
	Min, Max float64
}

// Len returns the width of r.
func (r Range) Len() float64 {
	return math.Abs(r.Max - r.Min)
}

// scaled grows r about its center by f.
func (r Range) scaled(f float64) Range {
	mid := (r.Min + r.Max) / 2
	half := (r.Max - r.Min) / 2 * f
	return Range{Min: mid - half, Max: mid + half}
}

type xyTimeConfig struct {
	points     plotter.XYs
	x, y       Range
	line       draw.LineStyle
	grid       draw.LineStyle
	subgrid    draw.LineStyle
	axes       draw.LineStyle
	text       color.Color
	background color.Color
	xUnit      string
	yUnit      string
	caption    string
	ratio      float64
	printer    *message.Printer
}

// XYTimeData is an animated line chart. Each point carries the time, in
// seconds, at which the line reaches it; while playback runs only the
// points reached so far are drawn and the axes follow their extent.
//
// The embedded Playback controls the animation. The chart pans and zooms
// with the mouse.
type XYTimeData struct {
	Playback

	points plotter.XYs
	xs, ys []Range
	times  []float64
	chart  *ggplot.Chart[xyTimeConfig]
}

// NewXYTimeData creates a chart of points. Points are ordered by time;
// points with equal times keep their order.
func NewXYTimeData(points []TimePoint, xUnit, yUnit, caption string, opts ...Option) (*XYTimeData, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b TimePoint) int {
		return cmp.Compare(a.T, b.T)
	})

	x := &XYTimeData{
		points: make(plotter.XYs, len(sorted)),
		xs:     make([]Range, len(sorted)),
		ys:     make([]Range, len(sorted)),
		times:  make([]float64, len(sorted)),
	}
	xr := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	yr := xr
	for i, p := range sorted {
		x.points[i] = plotter.XY{X: p.X, Y: p.Y}
		x.times[i] = p.T
		xr = Range{Min: math.Min(xr.Min, p.X), Max: math.Max(xr.Max, p.X)}
		yr = Range{Min: math.Min(yr.Min, p.Y), Max: math.Max(yr.Max, p.Y)}
		x.xs[i], x.ys[i] = xr, yr
	}
	x.Playback = newPlayback(x.times[0], x.times[len(x.times)-1], o.now)

	last := len(sorted) - 1
	cfg := xyTimeConfig{
		points:     x.points,
		x:          x.xs[last],
		y:          x.ys[last],
		line:       draw.LineStyle{Color: defaultLineColor, Width: px(2)},
		grid:       draw.LineStyle{Color: defaultGridColor, Width: px(2)},
		subgrid:    draw.LineStyle{Color: defaultSubgridColor, Width: px(1)},
		axes:       draw.LineStyle{Color: color.Black, Width: px(2)},
		text:       color.Black,
		background: color.White,
		xUnit:      xUnit,
		yUnit:      yUnit,
		caption:    caption,
		ratio:      DefaultRatio,
		printer:    message.NewPrinter(o.locale),
	}
	x.chart = ggplot.NewChart(cfg).
		WithMouse(ggplot.EnabledMouseConfig()).
		WithBuilder(drawXYTime)
	return x, nil
}

func (x *XYTimeData) update(f func(*xyTimeConfig)) {
	cfg := x.chart.Data()
	f(&cfg)
	x.chart.SetData(cfg)
}

// SetLineStyle sets the style of the plotted line.
func (x *XYTimeData) SetLineStyle(s draw.LineStyle) {
	x.update(func(c *xyTimeConfig) { c.line = s })
}

// SetGridStyle sets the style of the grid lines at major ticks.
func (x *XYTimeData) SetGridStyle(s draw.LineStyle) {
	x.update(func(c *xyTimeConfig) { c.grid = s })
}

// SetSubgridStyle sets the style of the grid lines at minor ticks.
func (x *XYTimeData) SetSubgridStyle(s draw.LineStyle) {
	x.update(func(c *xyTimeConfig) { c.subgrid = s })
}

// SetAxesStyle sets the style of the axis lines and tick marks.
func (x *XYTimeData) SetAxesStyle(s draw.LineStyle) {
	x.update(func(c *xyTimeConfig) { c.axes = s })
}

// SetTextColor sets the color of the caption, labels and tick labels.
func (x *XYTimeData) SetTextColor(c color.Color) {
	x.update(func(cfg *xyTimeConfig) { cfg.text = c })
}

// SetBackgroundColor sets the color painted behind the chart, white by
// default. Nil leaves the region unpainted, so whatever the host drew
// there shows through.
func (x *XYTimeData) SetBackgroundColor(c color.Color) {
	x.update(func(cfg *xyTimeConfig) { cfg.background = c })
}

// SetRatio sets how many Y units are shown per X unit.
func (x *XYTimeData) SetRatio(r float64) {
	x.update(func(c *xyTimeConfig) { c.ratio = r })
}

// SetMouse sets the chart's mouse bindings.
func (x *XYTimeData) SetMouse(m ggplot.MouseConfig) {
	x.chart.SetMouse(m)
}

// Transform returns the chart's current pan and zoom.
func (x *XYTimeData) Transform() ggplot.Transform {
	return x.chart.Transform()
}

// WithLineStyle is SetLineStyle returning x for chaining.
func (x *XYTimeData) WithLineStyle(s draw.LineStyle) *XYTimeData {
	x.SetLineStyle(s)
	return x
}

// WithGridStyle is SetGridStyle returning x for chaining.
func (x *XYTimeData) WithGridStyle(s draw.LineStyle) *XYTimeData {
	x.SetGridStyle(s)
	return x
}

// WithSubgridStyle is SetSubgridStyle returning x for chaining.
func (x *XYTimeData) WithSubgridStyle(s draw.LineStyle) *XYTimeData {
	x.SetSubgridStyle(s)
	return x
}

// WithAxesStyle is SetAxesStyle returning x for chaining.
func (x *XYTimeData) WithAxesStyle(s draw.LineStyle) *XYTimeData {
	x.SetAxesStyle(s)
	return x
}

// WithTextColor is SetTextColor returning x for chaining.
func (x *XYTimeData) WithTextColor(c color.Color) *XYTimeData {
	x.SetTextColor(c)
	return x
}

// WithBackgroundColor is SetBackgroundColor returning x for chaining.
func (x *XYTimeData) WithBackgroundColor(c color.Color) *XYTimeData {
	x.SetBackgroundColor(c)
	return x
}

// WithRatio is SetRatio returning x for chaining.
func (x *XYTimeData) WithRatio(r float64) *XYTimeData {
	x.SetRatio(r)
	return x
}

// WithTime is SetTime returning x for chaining.
func (x *XYTimeData) WithTime(t float64) *XYTimeData {
	x.SetTime(t)
	return x
}

// WithSpeed is SetSpeed returning x for chaining.
func (x *XYTimeData) WithSpeed(s float64) *XYTimeData {
	x.SetSpeed(s)
	return x
}

// visible returns the index of the last point shown at time t: the first
// point whose time is not before t, together with any points sharing its
// time.
func (x *XYTimeData) visible(t float64) int {
	i := sort.SearchFloat64s(x.times, t)
	if i >= len(x.times) {
		return len(x.times) - 1
	}
	for i+1 < len(x.times) && x.times[i+1] == x.times[i] {
		i++
	}
	return i
}

// Draw draws the chart into r, advancing the animation if playback is
// running or paused.
func (x *XYTimeData) Draw(r ggplot.Region) error {
	if x.started {
		i := x.visible(x.CurrentTime())
		if !x.started {
			ggplot.Logger().Debug("charts: playback finished", "end", x.last)
		}
		x.update(func(c *xyTimeConfig) {
			c.points = x.points[:i+1]
			c.x, c.y = x.xs[i], x.ys[i]
		})
	}
	return x.chart.Draw(r)
}

func drawXYTime(b *ggplot.Backend, _ ggplot.Transform, cfg xyTimeConfig) error {
	w, h := b.Size()
	dx := float64(w - 2*xMargin - labelArea)
	dy := float64(h - 2*yMargin - labelArea - captionSize)
	if dx <= 0 || dy <= 0 {
		// No room for the plot area.
		return nil
	}
	areaRatio := dx / dy

	xr, yr := fitRanges(cfg.x, cfg.y, cfg.ratio, areaRatio)

	p := plot.New()
	p.BackgroundColor = nil
	p.Title.Text = cfg.caption
	p.Title.Padding = px(tickSize)
	styleText(&p.Title.TextStyle, cfg.text)

	line, err := plotter.NewLine(cfg.points)
	if err != nil {
		return fmt.Errorf("charts: line: %w", err)
	}
	line.LineStyle = cfg.line
	p.Add(meshGrid{major: cfg.grid, minor: cfg.subgrid}, line)

	ticks := localeTicks{p: cfg.printer}
	for _, a := range []struct {
		axis  *plot.Axis
		r     Range
		label string
	}{
		{&p.X, xr, cfg.xUnit},
		{&p.Y, yr, cfg.yUnit},
	} {
		a.axis.Min, a.axis.Max = a.r.Min, a.r.Max
		a.axis.Label.Text = a.label
		a.axis.LineStyle = cfg.axes
		a.axis.Tick.LineStyle = cfg.axes
		a.axis.Tick.Length = px(tickSize)
		a.axis.Tick.Marker = ticks
		styleText(&a.axis.Label.TextStyle, cfg.text)
		styleText(&a.axis.Tick.Label, cfg.text)
	}

	c := b.Canvas()
	if cfg.background != nil {
		c.SetColor(cfg.background)
		c.Fill(c.Rectangle.Path())
	}
	p.Draw(draw.Crop(c, px(xMargin), -px(xMargin), px(yMargin), -px(yMargin)))
	return nil
}

// fitRanges widens one of the data ranges so that one Y unit spans ratio
// X units on a plot area of the given width:height aspect. Degenerate
// ranges are returned unchanged.
func fitRanges(x, y Range, ratio, aspect float64) (Range, Range) {
	display := ratio * (y.Len() / x.Len()) * aspect
	switch {
	case math.IsNaN(display) || math.IsInf(display, 0) || display == 0:
	case display > 1:
		x = x.scaled(display)
	case display < 1:
		y = y.scaled(1 / display)
	}
	return x, y
}

// styleText sets the chart's monospace caption font on s.
func styleText(s *text.Style, c color.Color) {
	fnt := plot.DefaultFont
	fnt.Variant = "Mono"
	s.Font = font.From(fnt, px(captionSize))
	s.Color = c
}
