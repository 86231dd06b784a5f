package charts

import "time"

// MinDelta is added to the elapsed playback time so that the visible span
// is never empty.
const MinDelta = 1e-5

// Playback is a play/pause/seek clock over the span [StartTime, EndTime],
// measured in seconds of wall-clock time scaled by the playback speed.
//
// Pausing records the instant playback paused; resuming moves the start
// instant forward by the paused duration, so time spent paused never
// counts as elapsed.
//
// Playback is not safe for concurrent use.
type Playback struct {
	now     func() time.Time
	first   float64
	last    float64
	speed   float64
	started bool
	paused  bool
	startAt time.Time
	pauseAt time.Time
}

func newPlayback(first, last float64, now func() time.Time) Playback {
	if now == nil {
		now = time.Now
	}
	return Playback{now: now, first: first, last: last, speed: 1}
}

// Start starts playback from the beginning.
func (p *Playback) Start() {
	p.started = true
	p.paused = false
	p.startAt = p.now()
}

// Stop stops playback. The next Start begins from the start time.
func (p *Playback) Stop() {
	p.started = false
	p.paused = false
}

// Toggle pauses running playback, resumes paused playback and starts
// stopped playback.
func (p *Playback) Toggle() {
	switch {
	case !p.started:
		p.Start()
	case p.paused:
		p.startAt = p.startAt.Add(p.now().Sub(p.pauseAt))
		p.paused = false
	default:
		p.pauseAt = p.now()
		p.paused = true
	}
}

// IsPlaying reports whether playback is started and not paused.
func (p *Playback) IsPlaying() bool {
	return p.started && !p.paused
}

// SetTime seeks to t seconds of elapsed playback. Seeking a stopped clock
// leaves it paused at t; seeking a running clock keeps it running.
func (p *Playback) SetTime(t float64) {
	now := p.now()
	p.startAt = now.Add(-time.Duration(t * float64(time.Second)))
	switch {
	case !p.started:
		p.started = true
		p.paused = true
		p.pauseAt = now
	case p.paused:
		p.pauseAt = now
	}
}

// SetSpeed sets the playback speed: 1 is real time, 2 double speed.
func (p *Playback) SetSpeed(speed float64) {
	p.speed = speed
}

// Speed returns the playback speed.
func (p *Playback) Speed() float64 {
	return p.speed
}

// StartTime returns the time of the first point.
func (p *Playback) StartTime() float64 {
	return p.first
}

// EndTime returns the time of the last point.
func (p *Playback) EndTime() float64 {
	return p.last
}

// CurrentTime returns the time being shown. A stopped clock shows the
// start time. Once the whole span has elapsed the clock stops and reports
// exactly the end time.
func (p *Playback) CurrentTime() float64 {
	if !p.started {
		return p.first
	}
	until := p.now()
	if p.paused {
		until = p.pauseAt
	}
	elapsed := MinDelta + p.speed*until.Sub(p.startAt).Seconds()
	if p.last-p.first > elapsed {
		return p.first + elapsed
	}
	p.Stop()
	return p.last
}
