// Package charts provides ready-made animated charts built on ggplot.
//
// [XYTimeData] plots a sequence of points that appear over time, and
// [TimeData] is the single-series form with time on the X axis. Both draw
// a gonum plot every frame, keep a play/pause/seek clock ([Playback]) and
// accept the same pan and zoom gestures as any ggplot chart:
//
//	chart, err := charts.NewTimeData(samples, "meters", "Distance over time")
//	if err != nil {
//		return err
//	}
//	chart.Start()
//
//	// each frame:
//	err = chart.Draw(region)
package charts
