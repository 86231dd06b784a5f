// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// Scroll unit conversions for ScrollDeltaLine and ScrollDeltaPage events.
const (
	LinePixels = 50
	PagePixels = 800
)

// Tracker accumulates gpucontext pointer and scroll events between frames.
//
// Attach it to exactly one pointer stream: either the legacy mouse
// callbacks (Attach) or unified pointer events (AttachPointer). Attaching
// both to the same window counts every movement twice.
//
// Host callbacks may run on a different goroutine than the one calling
// Frame.
type Tracker struct {
	mu      sync.Mutex
	pos     gg.Point
	hasPos  bool
	delta   gg.Point
	scroll  gg.Point
	buttons Buttons
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Attach subscribes to mouse move, press, release and scroll callbacks.
// The legacy scroll callback reports wheel notches, which are counted as
// lines.
func (t *Tracker) Attach(src gpucontext.EventSource) {
	src.OnMouseMove(t.move)
	src.OnMousePress(func(b gpucontext.MouseButton, x, y float64) {
		t.move(x, y)
		t.setButton(mouseButton(b), true)
	})
	src.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		t.move(x, y)
		t.setButton(mouseButton(b), false)
	})
	src.OnScroll(func(dx, dy float64) {
		t.addScroll(dx, dy, gpucontext.ScrollDeltaLine)
	})
}

// AttachPointer subscribes to unified pointer events. Only primary
// pointers are tracked.
func (t *Tracker) AttachPointer(src gpucontext.PointerEventSource) {
	src.OnPointer(t.pointer)
}

// AttachScroll subscribes to detailed scroll events.
func (t *Tracker) AttachScroll(src gpucontext.ScrollEventSource) {
	src.OnScrollEvent(func(ev gpucontext.ScrollEvent) {
		t.addScroll(ev.DeltaX, ev.DeltaY, ev.DeltaMode)
	})
}

// Snapshot implements Source by calling Frame.
func (t *Tracker) Snapshot() Snapshot {
	return t.Frame()
}

// Frame returns the input accumulated since the previous call and resets
// the movement and scroll totals. Held buttons persist.
func (t *Tracker) Frame() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := Snapshot{
		Pos:     t.pos,
		Delta:   t.delta,
		Buttons: t.buttons,
		Scroll:  t.scroll,
	}
	t.delta = gg.Point{}
	t.scroll = gg.Point{}
	return s
}

// Reset forgets all state, including held buttons and the last position.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pos, t.hasPos = gg.Point{}, false
	t.delta, t.scroll = gg.Point{}, gg.Point{}
	t.buttons = 0
}

func (t *Tracker) move(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moveLocked(x, y)
}

func (t *Tracker) moveLocked(x, y float64) {
	p := gg.Pt(x, y)
	if t.hasPos {
		t.delta = t.delta.Add(p.Sub(t.pos))
	}
	t.pos = p
	t.hasPos = true
}

func (t *Tracker) setButton(b Buttons, down bool) {
	if b == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if down {
		t.buttons |= b
	} else {
		t.buttons &^= b
	}
}

func (t *Tracker) pointer(ev gpucontext.PointerEvent) {
	if !ev.IsPrimary {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch ev.Type {
	case gpucontext.PointerLeave:
		t.hasPos = false
		return
	case gpucontext.PointerCancel:
		t.buttons = 0
		return
	}
	if ev.DeltaX != 0 || ev.DeltaY != 0 {
		// Locked cursor: positions stay put, movement comes as deltas.
		t.delta = t.delta.Add(gg.Pt(ev.DeltaX, ev.DeltaY))
		t.pos = gg.Pt(ev.X, ev.Y)
		t.hasPos = true
	} else {
		t.moveLocked(ev.X, ev.Y)
	}
	t.buttons = pointerButtons(ev.Buttons)
}

func (t *Tracker) addScroll(dx, dy float64, mode gpucontext.ScrollDeltaMode) {
	unit := 1.0
	switch mode {
	case gpucontext.ScrollDeltaLine:
		unit = LinePixels
	case gpucontext.ScrollDeltaPage:
		unit = PagePixels
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	// gpucontext reports down as positive; snapshots use forward as positive.
	t.scroll = t.scroll.Add(gg.Pt(dx*unit, -dy*unit))
}

func mouseButton(b gpucontext.MouseButton) Buttons {
	switch b {
	case gpucontext.MouseButtonLeft:
		return Primary
	case gpucontext.MouseButtonRight:
		return Secondary
	case gpucontext.MouseButtonMiddle:
		return Middle
	default:
		return 0
	}
}

func pointerButtons(b gpucontext.Buttons) Buttons {
	var out Buttons
	if b.HasLeft() {
		out |= Primary
	}
	if b.HasRight() {
		out |= Secondary
	}
	if b.HasMiddle() {
		out |= Middle
	}
	return out
}
