package ggplot

// BackendOption configures a Backend during creation.
//
// Example:
//
//	fonts := ggplot.NewFontResolver(ggplot.WithSystemFonts(""))
//	b := ggplot.NewBackend(region, ggplot.WithFontResolver(fonts))
type BackendOption func(*backendOptions)

// backendOptions holds optional configuration for Backend creation.
type backendOptions struct {
	fonts *FontResolver
}

// defaultBackendOptions returns the default backend options.
func defaultBackendOptions() backendOptions {
	return backendOptions{
		fonts: nil, // the painter lays out text if nil
	}
}

// WithFontResolver makes the backend lay out text itself with r instead of
// asking the region's painter to do it. The resulting galleys are still
// drawn by the painter.
func WithFontResolver(r *FontResolver) BackendOption {
	return func(o *backendOptions) {
		o.fonts = r
	}
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	dpi float64
}

// DefaultDPI is the resolution a Canvas assumes when converting gonum's
// points into pixels.
const DefaultDPI = 96

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{dpi: DefaultDPI}
}

// WithDPI sets the canvas resolution in dots per inch. Non-positive values
// are ignored.
func WithDPI(dpi float64) CanvasOption {
	return func(o *canvasOptions) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}
