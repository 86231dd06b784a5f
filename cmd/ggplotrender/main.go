// Command ggplotrender renders a ggplot demo chart to a PNG or WebP file
// without opening a window.
//
// Usage:
//
//	ggplotrender -chart surface -frames 30 -drag 4,0 -output surface.webp
//
// Every frame after the first replays the -drag and -zoom input, so the
// interactive pan, zoom and rotate paths run headless.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Printf("ggplotrender: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("ggplotrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML config file")
		flags      Flags
	)
	fs.StringVar(&flags.Chart, "chart", "", "chart to render: parabola, spiral, surface or timeline")
	fs.IntVar(&flags.Width, "width", 0, "image width (default 800)")
	fs.IntVar(&flags.Height, "height", 0, "image height (default 600)")
	fs.StringVar(&flags.Output, "output", "", "output file, .png or .webp (default <chart>.png)")
	fs.IntVar(&flags.Frames, "frames", 0, "frames to draw (default 1)")
	fs.Float64Var(&flags.Zoom, "zoom", 0, "wheel pixels scrolled per frame")
	fs.StringVar(&flags.Drag, "drag", "", "pointer movement per frame as dx,dy")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := Config{Time: -1}
	if *configPath != "" {
		var err error
		if cfg, err = Load(*configPath); err != nil {
			return err
		}
	}
	if err := cfg.Resolve(flags); err != nil {
		return err
	}

	img, err := render(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := encode(f, img, cfg.Output); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("%s saved to %s (%dx%d)", cfg.Chart, cfg.Output, cfg.Width, cfg.Height)
	return nil
}
