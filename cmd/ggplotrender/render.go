package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/input"
)

// scripted returns the input replayed on every frame after the first. The
// pointer moves with the demos' drag button held, or their rotate button
// when cfg.Rotate is set.
func scripted(cfg Config) input.Snapshot {
	var s input.Snapshot
	if cfg.DragX != 0 || cfg.DragY != 0 {
		s.Delta = gg.Pt(cfg.DragX, cfg.DragY)
		s.Buttons = mouse.DragBind.Buttons()
		if cfg.Rotate {
			s.Buttons = mouse.RotateBind.Buttons()
		}
	}
	s.Scroll = gg.Pt(0, cfg.Zoom)
	return s
}

// render draws cfg.Frames frames of the configured chart and returns the
// last one.
func render(cfg Config) (image.Image, error) {
	newDemo, ok := demos[cfg.Chart]
	if !ok {
		return nil, fmt.Errorf("unknown chart %q", cfg.Chart)
	}
	d, err := newDemo(cfg)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", cfg.Chart, err)
	}
	return play(d, cfg)
}

// play draws cfg.Frames frames of d and returns the last one.
func play(d demo, cfg Config) (image.Image, error) {
	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer func() { _ = dc.Close() }()

	var src input.Static
	for frame := range cfg.Frames {
		if frame > 0 {
			src = input.Static(scripted(cfg))
		}
		dc.ClearWithColor(gg.White)
		region := ggplot.FullRegion(dc, ggplot.WithInput(src))
		if err := d.Draw(region); err != nil {
			return nil, fmt.Errorf("frame %d: %w", frame, err)
		}
	}
	return dc.Image(), nil
}

// encode writes img to w in the format the output extension names.
func encode(w io.Writer, img image.Image, output string) error {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".webp":
		return nativewebp.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}
