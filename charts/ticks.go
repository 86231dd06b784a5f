package charts

import (
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gonum.org/v1/plot"
)

// localeTicks places ticks like plot.DefaultTicks and formats the major
// tick labels for a locale.
type localeTicks struct {
	p *message.Printer
}

var _ plot.Ticker = localeTicks{}

// Ticks implements plot.Ticker.
func (t localeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, tk := range ticks {
		if tk.IsMinor() {
			continue
		}
		ticks[i].Label = t.format(tk.Value, tk.Label)
	}
	return ticks
}

// format renders v with as many fraction digits as the default label has.
// Labels in exponent form are kept.
func (t localeTicks) format(v float64, label string) string {
	if strings.ContainsAny(label, "eE") {
		return label
	}
	digits := 0
	if i := strings.IndexByte(label, '.'); i >= 0 {
		digits = len(label) - i - 1
	}
	return t.p.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
}
