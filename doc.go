// Package ggplot draws charts into a region of a gg immediate-mode
// painter and lets the user pan, zoom and rotate them with the mouse.
//
// # Overview
//
// A chart is drawn every frame. The host hands ggplot a [Region] (a
// rectangle, a [Painter] clipped to it and the frame's pointer input) and
// ggplot turns drawing calls into painter shapes:
//
//	dc := gg.NewContext(800, 600)
//	region := ggplot.FullRegion(dc, ggplot.WithInput(tracker))
//
//	chart := ggplot.NewChart(data).
//		WithMouse(ggplot.EnabledMouseConfig()).
//		WithBuilder(func(b *ggplot.Backend, _ ggplot.Transform, d Data) error {
//			p := plot.New()
//			// ... add plotters
//			p.Draw(b.Canvas())
//			return nil
//		})
//
//	// once per frame
//	chart.Draw(region)
//
// # Backend
//
// [Backend] maps region-local coordinates to painter coordinates with a
// zoom about the region center followed by a pan offset. It offers the
// primitive set of a chart drawing backend (pixels, lines, paths,
// polygons, rectangles, circles, text, images) and [Backend.Canvas]
// exposes the same backend as a gonum/plot vg.Canvas, so any gonum plot
// can be drawn into a gg window.
//
// # Interaction
//
// [Chart] owns a [Transform] (pitch, yaw, zoom and pan) and a
// [MouseConfig]. On every Draw it reads the region's input once, updates
// the transform from drag, rotate and scroll gestures, and calls the
// builder with a backend already set up with the current pan and zoom.
// Pitch and yaw are handed to the builder to use for 3D projection
// ([Transform.Project]).
//
// Pointer input comes from the input package, whose Tracker turns
// gpucontext events into per-frame snapshots.
//
// # Text
//
// Text is laid out by the painter. [GGPainter] resolves fonts through a
// [FontResolver] holding the embedded Go and Liberation fonts, and can be
// extended with registered font files or installed system fonts.
//
// # Logging
//
// ggplot logs through [log/slog] and is silent by default. Call
// [SetLogger] to enable it.
package ggplot
