package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the render settings.
type Config struct {
	// Chart is the demo to render.
	Chart  string `toml:"chart"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// Output is the image path; the extension picks PNG or WebP.
	Output string `toml:"output"`

	// Frames is how many frames are drawn. Every frame after the first
	// replays the scripted input below.
	Frames int `toml:"frames"`
	// Zoom is the wheel movement per frame, in pixels.
	Zoom float64 `toml:"zoom"`
	// DragX and DragY are the pointer movement per frame with the middle
	// button held, which pans the chart.
	DragX float64 `toml:"drag_x"`
	DragY float64 `toml:"drag_y"`
	// Rotate drags with the primary button instead, rotating 3D charts.
	Rotate bool `toml:"rotate"`
	// Time is the playback time animated charts are shown at, in seconds.
	// Negative shows the whole chart.
	Time float64 `toml:"time"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Chart  string
	Width  int
	Height int
	Output string
	Frames int
	Zoom   float64
	Drag   string
}

// Load reads a TOML config file.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Config{Time: -1}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	if flags.Chart != "" {
		c.Chart = flags.Chart
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Zoom != 0 {
		c.Zoom = flags.Zoom
	}
	if flags.Drag != "" {
		dx, dy, err := parseDrag(flags.Drag)
		if err != nil {
			return err
		}
		c.DragX, c.DragY = dx, dy
	}

	if c.Chart == "" {
		c.Chart = "parabola"
	}
	if _, ok := demos[c.Chart]; !ok {
		return fmt.Errorf("config: unknown chart %q", c.Chart)
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Output == "" {
		c.Output = c.Chart + ".png"
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".png", ".webp":
	default:
		return fmt.Errorf("config: output %s: want .png or .webp", c.Output)
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	return nil
}

// parseDrag parses "dx,dy".
func parseDrag(s string) (dx, dy float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("config: drag %q: want dx,dy", s)
	}
	if dx, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, fmt.Errorf("config: drag %q: %w", s, err)
	}
	if dy, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, fmt.Errorf("config: drag %q: %w", s, err)
	}
	return dx, dy, nil
}
