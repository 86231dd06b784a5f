package charts

import (
	"time"

	"golang.org/x/text/language"
)

type options struct {
	now    func() time.Time
	locale language.Tag
}

func defaultOptions() options {
	return options{now: time.Now, locale: language.English}
}

// Option configures a chart.
type Option func(*options)

// WithClock sets the clock playback reads. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLocale sets the language tick labels are formatted for.
// The default is English.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}
