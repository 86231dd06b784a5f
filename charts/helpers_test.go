package charts

import (
	"math"
	"time"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

// advance moves the clock forward by s seconds.
func (c *fakeClock) advance(s float64) {
	c.t = c.t.Add(time.Duration(s * float64(time.Second)))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// distance is six samples spanning 0..5 seconds.
var distance = []TimeValue{
	{T: 0, V: 0},
	{T: 1, V: 2},
	{T: 2, V: 2.8},
	{T: 3, V: 3.4},
	{T: 4, V: 3.8},
	{T: 5, V: 4},
}
