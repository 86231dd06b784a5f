package charts

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggplot"
)

func newTestRegion(t *testing.T, w, h int) (*gg.Context, ggplot.Region) {
	t.Helper()
	dc := gg.NewContext(w, h)
	t.Cleanup(func() { _ = dc.Close() })
	return dc, ggplot.FullRegion(dc)
}

func TestNewXYTimeDataEmpty(t *testing.T) {
	if _, err := NewXYTimeData(nil, "x", "y", "c"); !errors.Is(err, ErrNoPoints) {
		t.Errorf("NewXYTimeData(nil) error = %v, want ErrNoPoints", err)
	}
	if _, err := NewTimeData([]TimeValue{}, "m", "c"); !errors.Is(err, ErrNoPoints) {
		t.Errorf("NewTimeData(empty) error = %v, want ErrNoPoints", err)
	}
}

func TestNewXYTimeDataSortsAndRanges(t *testing.T) {
	x, err := NewXYTimeData([]TimePoint{
		{X: 5, Y: -1, T: 2},
		{X: 1, Y: 3, T: 0},
		{X: -2, Y: 0, T: 1},
		{X: 7, Y: 9, T: 1},
	}, "x", "y", "c")
	if err != nil {
		t.Fatalf("NewXYTimeData() error = %v", err)
	}

	wantTimes := []float64{0, 1, 1, 2}
	wantX := []float64{1, -2, 7, 5}
	for i := range wantTimes {
		if x.times[i] != wantTimes[i] || x.points[i].X != wantX[i] {
			t.Errorf("point %d = (%v at %v), want (%v at %v)",
				i, x.points[i].X, x.times[i], wantX[i], wantTimes[i])
		}
	}

	wantXs := []Range{{1, 1}, {-2, 1}, {-2, 7}, {-2, 7}}
	wantYs := []Range{{3, 3}, {0, 3}, {0, 9}, {-1, 9}}
	for i := range wantXs {
		if x.xs[i] != wantXs[i] || x.ys[i] != wantYs[i] {
			t.Errorf("range %d = %v %v, want %v %v", i, x.xs[i], x.ys[i], wantXs[i], wantYs[i])
		}
	}
	if x.StartTime() != 0 || x.EndTime() != 2 {
		t.Errorf("span = [%v, %v], want [0, 2]", x.StartTime(), x.EndTime())
	}
}

func TestXYTimeDataVisible(t *testing.T) {
	x, err := NewXYTimeData([]TimePoint{
		{T: 0}, {T: 1}, {T: 2}, {T: 2}, {T: 3},
	}, "x", "y", "c")
	if err != nil {
		t.Fatalf("NewXYTimeData() error = %v", err)
	}
	tests := []struct {
		t    float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{MinDelta, 1},
		{1, 1},
		{1.5, 3},
		{2, 3},
		{3, 4},
		{10, 4},
	}
	for _, tt := range tests {
		if got := x.visible(tt.t); got != tt.want {
			t.Errorf("visible(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestXYTimeDataDrawPlayback(t *testing.T) {
	clk := newFakeClock()
	td, err := NewTimeData(distance, "meters", "Distance over time", WithClock(clk.now))
	if err != nil {
		t.Fatalf("NewTimeData() error = %v", err)
	}
	_, region := newTestRegion(t, 400, 300)

	// Stopped: everything is shown.
	if err := td.Draw(region); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if n := len(td.chart.Data().points); n != 6 {
		t.Errorf("stopped chart shows %d points, want 6", n)
	}

	td.Start()
	clk.advance(1.5)
	if err := td.Draw(region); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	cfg := td.chart.Data()
	if len(cfg.points) != 3 {
		t.Errorf("chart shows %d points at 1.5s, want 3", len(cfg.points))
	}
	if cfg.x != (Range{0, 2}) || cfg.y != (Range{0, 2.8}) {
		t.Errorf("ranges = %v %v, want [0 2] [0 2.8]", cfg.x, cfg.y)
	}

	clk.advance(10)
	if err := td.Draw(region); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if n := len(td.chart.Data().points); n != 6 {
		t.Errorf("finished chart shows %d points, want 6", n)
	}
	if td.IsPlaying() {
		t.Error("playback still running after the end")
	}
}

func TestXYTimeDataDrawPaints(t *testing.T) {
	td, err := NewTimeData(distance, "meters", "Distance over time")
	if err != nil {
		t.Fatalf("NewTimeData() error = %v", err)
	}
	td.SetBackgroundColor(color.NRGBA{B: 255, A: 255})
	dc, region := newTestRegion(t, 400, 300)

	if err := td.Draw(region); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if c := dc.ResizeTarget().GetPixel(2, 2); c.B < 0.9 || c.R > 0.1 {
		t.Errorf("corner pixel = %+v, want background blue", c)
	}
}

func TestXYTimeDataBackground(t *testing.T) {
	tests := []struct {
		name    string
		bg      func(*TimeData)
		wantRed bool
	}{
		{"default white", func(*TimeData) {}, false},
		{"nil keeps the host's pixels", func(td *TimeData) { td.SetBackgroundColor(nil) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td, err := NewTimeData(distance, "meters", "Distance over time")
			if err != nil {
				t.Fatalf("NewTimeData() error = %v", err)
			}
			tt.bg(td)
			dc, region := newTestRegion(t, 400, 300)
			dc.ClearWithColor(gg.Red)

			if err := td.Draw(region); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			c := dc.ResizeTarget().GetPixel(2, 2)
			if tt.wantRed && (c.R < 0.9 || c.G > 0.1) {
				t.Errorf("corner pixel = %+v, want the red host fill", c)
			}
			if !tt.wantRed && (c.R < 0.9 || c.G < 0.9 || c.B < 0.9) {
				t.Errorf("corner pixel = %+v, want white", c)
			}
		})
	}
}

func TestXYTimeDataDrawTooSmall(t *testing.T) {
	td, err := NewTimeData(distance, "meters", "Distance over time")
	if err != nil {
		t.Fatalf("NewTimeData() error = %v", err)
	}
	for _, size := range [][2]int{{60, 300}, {400, 80}, {75, 85}} {
		dc, region := newTestRegion(t, size[0], size[1])
		if err := td.Draw(region); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		pm := dc.ResizeTarget()
		for y := 0; y < size[1]; y += 5 {
			for x := 0; x < size[0]; x += 5 {
				if c := pm.GetPixel(x, y); c.A > 0 {
					t.Fatalf("%v region: pixel (%d,%d) = %+v, want nothing drawn", size, x, y, c)
				}
			}
		}
	}
}

func TestXYTimeDataSetters(t *testing.T) {
	line := draw.LineStyle{Color: color.White, Width: 3}
	grid := draw.LineStyle{Color: color.Black, Width: 1}
	x, err := NewXYTimeData([]TimePoint{{X: 1, Y: 1}}, "x", "y", "c")
	if err != nil {
		t.Fatalf("NewXYTimeData() error = %v", err)
	}
	x.WithLineStyle(line).
		WithGridStyle(grid).
		WithSubgridStyle(grid).
		WithAxesStyle(line).
		WithTextColor(color.White).
		WithBackgroundColor(nil).
		WithRatio(2).
		WithSpeed(3)

	cfg := x.chart.Data()
	same := func(a, b draw.LineStyle) bool {
		return a.Color == b.Color && a.Width == b.Width
	}
	if !same(cfg.line, line) || !same(cfg.grid, grid) || !same(cfg.subgrid, grid) || !same(cfg.axes, line) {
		t.Error("line styles were not applied")
	}
	if cfg.text != color.White || cfg.background != nil || cfg.ratio != 2 {
		t.Errorf("config = %+v", cfg)
	}
	if x.Speed() != 3 {
		t.Errorf("Speed() = %v, want 3", x.Speed())
	}
	if !x.chart.Mouse().Drag || !x.chart.Mouse().Zoom {
		t.Error("preset chart does not pan and zoom")
	}
}

func TestTimeDataAxes(t *testing.T) {
	td, err := NewTimeData(distance, "meters", "c")
	if err != nil {
		t.Fatalf("NewTimeData() error = %v", err)
	}
	cfg := td.chart.Data()
	if cfg.xUnit != "seconds" || cfg.yUnit != "meters" {
		t.Errorf("units = %q, %q", cfg.xUnit, cfg.yUnit)
	}
	if p := td.points[3]; p.X != 3 || p.Y != 3.4 {
		t.Errorf("point 3 = %v, want (3, 3.4)", p)
	}
}

func TestFitRanges(t *testing.T) {
	tests := []struct {
		name         string
		x, y         Range
		ratio        float64
		aspect       float64
		wantX, wantY Range
	}{
		{"square", Range{0, 4}, Range{0, 4}, 1, 1, Range{0, 4}, Range{0, 4}},
		{"tall data widens y", Range{0, 10}, Range{0, 5}, 1, 1, Range{0, 10}, Range{-2.5, 7.5}},
		{"wide data widens x", Range{0, 2}, Range{0, 4}, 1, 1, Range{-1, 3}, Range{0, 4}},
		{"aspect", Range{0, 4}, Range{0, 4}, 1, 2, Range{-2, 6}, Range{0, 4}},
		{"flat x", Range{1, 1}, Range{0, 4}, 1, 1, Range{1, 1}, Range{0, 4}},
		{"flat y", Range{0, 4}, Range{2, 2}, 1, 1, Range{0, 4}, Range{2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := fitRanges(tt.x, tt.y, tt.ratio, tt.aspect)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("fitRanges() = %v %v, want %v %v", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
