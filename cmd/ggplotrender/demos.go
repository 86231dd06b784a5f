package main

import (
	"image"
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/charts"
)

// demo is a chart drawn once per frame.
type demo interface {
	Draw(r ggplot.Region) error
	Transform() ggplot.Transform
}

// mouse is the binding every demo uses; scripted input presses its buttons.
var mouse = ggplot.EnabledMouseConfig()

var demos = map[string]func(cfg Config) (demo, error){
	"parabola": newParabola,
	"spiral":   newSpiral,
	"surface":  newSurface,
	"timeline": newTimeline,
}

type ranges struct {
	X, Y charts.Range
}

func newParabola(Config) (demo, error) {
	r := ranges{X: charts.Range{Min: -1, Max: 1}, Y: charts.Range{Min: -0.1, Max: 1}}
	return ggplot.NewChart(r).
		WithMouse(mouse).
		WithBuilder(drawParabola), nil
}

func drawParabola(b *ggplot.Backend, _ ggplot.Transform, r ranges) error {
	p := plot.New()
	p.Title.Text = "y=x^2"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(24)
	p.X.Min, p.X.Max = r.X.Min, r.X.Max
	p.Y.Min, p.Y.Max = r.Y.Min, r.Y.Max

	fn := plotter.NewFunction(func(x float64) float64 { return x * x })
	fn.Color = color.RGBA{R: 255, A: 255}
	fn.Width = vg.Points(1.5)
	fn.Samples = 100

	p.Add(plotter.NewGrid(), fn)
	p.Legend.Add("y = x^2", fn)
	p.Legend.Top = true
	p.Draw(b.Canvas())
	return nil
}

const (
	spiralLen = 10
	spiralSub = 100
)

func newSpiral(cfg Config) (demo, error) {
	points := make([]charts.TimePoint, 0, spiralLen*spiralSub)
	scale := 1.0 / spiralSub
	rev := math.Pi / spiralSub
	for i := range spiralLen * spiralSub {
		points = append(points, charts.TimePoint{
			X: math.Sin(rev) * scale,
			Y: math.Cos(rev) * scale,
			T: float64(i) / spiralSub,
		})
		scale += 1.0 / spiralSub
		rev += math.Pi / spiralSub
	}

	chart, err := charts.NewXYTimeData(points, "", "", "")
	if err != nil {
		return nil, err
	}
	chart.SetLineStyle(lineStyle(color.White, 2))
	chart.SetGridStyle(lineStyle(color.NRGBA{R: 0x61, G: 0x61, B: 0x61, A: 0xff}, 2))
	chart.SetSubgridStyle(lineStyle(color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}, 1))
	chart.SetAxesStyle(lineStyle(color.NRGBA{R: 0x26, G: 0xa6, B: 0x9a, A: 0xff}, 2))
	chart.SetTextColor(color.NRGBA{R: 0xff, G: 0xf3, B: 0xe0, A: 0xff})
	chart.SetBackgroundColor(color.NRGBA{R: 0x1b, G: 0x1b, B: 0x1b, A: 0xff})
	chart.SetMouse(mouse)
	if cfg.Time >= 0 {
		chart.SetTime(cfg.Time)
	}
	return chart, nil
}

var distance = []charts.TimeValue{
	{T: 0, V: 0},
	{T: 1, V: 2},
	{T: 2, V: 2.8},
	{T: 3, V: 3.4},
	{T: 4, V: 3.8},
	{T: 5, V: 4},
}

func newTimeline(cfg Config) (demo, error) {
	chart, err := charts.NewTimeData(distance, "meters", "Distance Over Time")
	if err != nil {
		return nil, err
	}
	chart.SetMouse(mouse)
	if cfg.Time >= 0 {
		chart.SetTime(cfg.Time)
	}
	return chart, nil
}

func newSurface(Config) (demo, error) {
	return ggplot.NewChart(struct{}{}).
		WithMouse(mouse).
		WithPitch(0.7).
		WithYaw(0.7).
		WithBuilder(drawSurface), nil
}

type quad struct {
	corners [4]r3.Vec
	depth   float64
}

// drawSurface draws y = cos(x²+z²) over [-3, 3]² and a helix through it,
// projecting by hand and filling back to front.
func drawSurface(b *ggplot.Backend, t ggplot.Transform, _ struct{}) error {
	w, h := b.Size()
	center := r3.Vec{X: float64(w) / 2, Y: float64(h) / 2}
	unit := 0.7 * math.Min(float64(w), float64(h)) / 8

	project := func(v r3.Vec) image.Point {
		x, y := t.Project(v)
		return image.Pt(int(math.Round(center.X+x*unit)), int(math.Round(center.Y-y*unit)))
	}

	const n = 30
	surface := func(x, z float64) r3.Vec {
		return r3.Vec{X: x, Y: math.Cos(x*x + z*z), Z: z}
	}
	quads := make([]quad, 0, 4*n*n)
	for i := -n; i < n; i++ {
		for j := -n; j < n; j++ {
			x0, x1 := float64(i)/10, float64(i+1)/10
			z0, z1 := float64(j)/10, float64(j+1)/10
			q := quad{corners: [4]r3.Vec{
				surface(x0, z0), surface(x1, z0), surface(x1, z1), surface(x0, z1),
			}}
			for _, c := range q.corners {
				q.depth += t.Rotate(c).Z
			}
			quads = append(quads, q)
		}
	}
	slices.SortFunc(quads, func(a, b quad) int {
		switch {
		case a.depth < b.depth:
			return 1
		case a.depth > b.depth:
			return -1
		}
		return 0
	})

	if err := drawBox(b, project); err != nil {
		return err
	}
	fill := ggplot.ShapeStyle{Color: ggplot.RGB(0, 0, 255).Mix(0.2), Filled: true}
	edge := ggplot.ShapeStyle{Color: ggplot.RGB(0, 0, 255).Mix(0.3), StrokeWidth: 1}
	for _, q := range quads {
		poly := make([]image.Point, 4)
		for k, c := range q.corners {
			poly[k] = project(c)
		}
		// Edge-on quads have no area and fail to fill.
		_ = b.FillPolygon(poly, fill)
		if err := b.DrawPath(append(poly, poly[0]), edge); err != nil {
			return err
		}
	}

	helix := make([]image.Point, 0, 200)
	for i := -100; i < 100; i++ {
		y := float64(i) / 40
		helix = append(helix, project(r3.Vec{X: math.Sin(y * 10), Y: y, Z: math.Cos(y * 10)}))
	}
	if err := b.DrawPath(helix, ggplot.ShapeStyle{Color: ggplot.RGB(0, 0, 0), StrokeWidth: 1}); err != nil {
		return err
	}

	caption := ggplot.TextStyle{
		Family: ggplot.FamilySansSerif,
		Size:   20,
		Color:  ggplot.RGB(0, 0, 0),
		Anchor: ggplot.Anchor{H: ggplot.HCenter, V: ggplot.VTop},
	}
	return b.DrawText("3D Plot Test", caption, image.Pt(w/2, 10))
}

// drawBox draws the edges of the [-3, 3]³ cube.
func drawBox(b *ggplot.Backend, project func(r3.Vec) image.Point) error {
	style := ggplot.ShapeStyle{Color: ggplot.RGB(0, 0, 0).Mix(0.15), StrokeWidth: 1}
	for _, e := range [][2]r3.Vec{
		{{X: -3, Y: -3, Z: -3}, {X: 3, Y: -3, Z: -3}},
		{{X: -3, Y: -3, Z: 3}, {X: 3, Y: -3, Z: 3}},
		{{X: -3, Y: -3, Z: -3}, {X: -3, Y: -3, Z: 3}},
		{{X: 3, Y: -3, Z: -3}, {X: 3, Y: -3, Z: 3}},
		{{X: -3, Y: -3, Z: -3}, {X: -3, Y: 3, Z: -3}},
		{{X: 3, Y: -3, Z: -3}, {X: 3, Y: 3, Z: -3}},
		{{X: -3, Y: -3, Z: 3}, {X: -3, Y: 3, Z: 3}},
		{{X: 3, Y: -3, Z: 3}, {X: 3, Y: 3, Z: 3}},
	} {
		if err := b.DrawLine(project(e[0]), project(e[1]), style); err != nil {
			return err
		}
	}
	return nil
}

func lineStyle(c color.Color, pixels float64) draw.LineStyle {
	return draw.LineStyle{Color: c, Width: vg.Length(pixels) * vg.Inch / ggplot.DefaultDPI}
}
