package charts

// TimeValue is a sample V taken at time T, in seconds.
type TimeValue struct {
	T, V float64
}

// TimeData is an animated chart of one series over time: time runs along
// the X axis in seconds and each sample appears at its own time.
type TimeData struct {
	*XYTimeData
}

// NewTimeData creates a chart of values. unit labels the Y axis.
func NewTimeData(values []TimeValue, unit, caption string, opts ...Option) (*TimeData, error) {
	points := make([]TimePoint, len(values))
	for i, v := range values {
		points[i] = TimePoint{X: v.T, Y: v.V, T: v.T}
	}
	xy, err := NewXYTimeData(points, "seconds", unit, caption, opts...)
	if err != nil {
		return nil, err
	}
	return &TimeData{XYTimeData: xy}, nil
}
