// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"sync"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// mockEventSource records the callbacks a Tracker registers.
type mockEventSource struct {
	gpucontext.NullEventSource
	move    func(x, y float64)
	press   func(b gpucontext.MouseButton, x, y float64)
	release func(b gpucontext.MouseButton, x, y float64)
	scroll  func(dx, dy float64)
}

func (m *mockEventSource) OnMouseMove(fn func(x, y float64)) { m.move = fn }
func (m *mockEventSource) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	m.press = fn
}
func (m *mockEventSource) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) {
	m.release = fn
}
func (m *mockEventSource) OnScroll(fn func(dx, dy float64)) { m.scroll = fn }

// mockPointerSource implements gpucontext.PointerEventSource for testing.
type mockPointerSource struct {
	handler func(gpucontext.PointerEvent)
}

func (m *mockPointerSource) OnPointer(fn func(gpucontext.PointerEvent)) { m.handler = fn }

// mockScrollSource implements gpucontext.ScrollEventSource for testing.
type mockScrollSource struct {
	handler func(gpucontext.ScrollEvent)
}

func (m *mockScrollSource) OnScrollEvent(fn func(gpucontext.ScrollEvent)) { m.handler = fn }

func TestTrackerEmptyFrame(t *testing.T) {
	tr := NewTracker()
	if got := tr.Frame(); got != (Snapshot{}) {
		t.Errorf("Frame() = %+v, want zero snapshot", got)
	}
}

func TestTrackerMouseDelta(t *testing.T) {
	tr := NewTracker()
	src := &mockEventSource{}
	tr.Attach(src)

	// First position only establishes the origin.
	src.move(10, 10)
	src.move(15, 12)
	src.move(20, 8)

	got := tr.Frame()
	if got.Delta != gg.Pt(10, -2) {
		t.Errorf("Delta = %v, want (10, -2)", got.Delta)
	}
	if got.Pos != gg.Pt(20, 8) {
		t.Errorf("Pos = %v, want (20, 8)", got.Pos)
	}

	if got := tr.Frame(); got.Delta != (gg.Point{}) {
		t.Errorf("second Frame() Delta = %v, want zero", got.Delta)
	}
}

func TestTrackerButtonsPersist(t *testing.T) {
	tr := NewTracker()
	src := &mockEventSource{}
	tr.Attach(src)

	src.press(gpucontext.MouseButtonMiddle, 0, 0)
	src.press(gpucontext.MouseButtonLeft, 0, 0)

	for i := range 2 {
		got := tr.Frame()
		if !got.Buttons.Has(Middle) || !got.Buttons.Has(Primary) {
			t.Errorf("frame %d: Buttons = %b, want primary and middle", i, got.Buttons)
		}
		if got.Buttons.Has(Secondary) {
			t.Errorf("frame %d: secondary reported held", i)
		}
	}

	src.release(gpucontext.MouseButtonLeft, 0, 0)
	if got := tr.Frame(); got.Buttons != Middle {
		t.Errorf("after release Buttons = %b, want middle only", got.Buttons)
	}
}

func TestTrackerUnknownButtonIgnored(t *testing.T) {
	tr := NewTracker()
	src := &mockEventSource{}
	tr.Attach(src)

	src.press(gpucontext.MouseButton4, 0, 0)
	if got := tr.Frame(); got.Buttons != 0 {
		t.Errorf("Buttons = %b, want none", got.Buttons)
	}
}

func TestTrackerScrollUnits(t *testing.T) {
	tests := []struct {
		name string
		ev   gpucontext.ScrollEvent
		want gg.Point
	}{
		{"pixel down", gpucontext.ScrollEvent{DeltaY: 30, DeltaMode: gpucontext.ScrollDeltaPixel}, gg.Pt(0, -30)},
		{"pixel up", gpucontext.ScrollEvent{DeltaY: -4, DeltaMode: gpucontext.ScrollDeltaPixel}, gg.Pt(0, 4)},
		{"line", gpucontext.ScrollEvent{DeltaY: -1, DeltaMode: gpucontext.ScrollDeltaLine}, gg.Pt(0, LinePixels)},
		{"page", gpucontext.ScrollEvent{DeltaX: 1, DeltaMode: gpucontext.ScrollDeltaPage}, gg.Pt(PagePixels, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			src := &mockScrollSource{}
			tr.AttachScroll(src)
			src.handler(tt.ev)
			if got := tr.Frame().Scroll; got != tt.want {
				t.Errorf("Scroll = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackerLegacyScrollIsLines(t *testing.T) {
	tr := NewTracker()
	src := &mockEventSource{}
	tr.Attach(src)

	src.scroll(0, -2)
	src.scroll(0, 1)
	if got := tr.Frame().Scroll; got != gg.Pt(0, LinePixels) {
		t.Errorf("Scroll = %v, want (0, %d)", got, LinePixels)
	}
	if got := tr.Frame().Scroll; got != (gg.Point{}) {
		t.Errorf("Scroll after reset = %v, want zero", got)
	}
}

func TestTrackerPointerEvents(t *testing.T) {
	tr := NewTracker()
	src := &mockPointerSource{}
	tr.AttachPointer(src)

	src.handler(gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: 5, Y: 5, IsPrimary: true})
	src.handler(gpucontext.PointerEvent{
		Type: gpucontext.PointerDown, X: 5, Y: 5, IsPrimary: true,
		Buttons: gpucontext.ButtonsRight,
	})
	src.handler(gpucontext.PointerEvent{
		Type: gpucontext.PointerMove, X: 9, Y: 2, IsPrimary: true,
		Buttons: gpucontext.ButtonsRight,
	})
	// Secondary touch points are ignored.
	src.handler(gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: 100, Y: 100})

	got := tr.Frame()
	if got.Delta != gg.Pt(4, -3) {
		t.Errorf("Delta = %v, want (4, -3)", got.Delta)
	}
	if got.Buttons != Secondary {
		t.Errorf("Buttons = %b, want secondary", got.Buttons)
	}

	src.handler(gpucontext.PointerEvent{Type: gpucontext.PointerCancel, IsPrimary: true})
	if got := tr.Frame(); got.Buttons != 0 {
		t.Errorf("after cancel Buttons = %b, want none", got.Buttons)
	}
}

func TestTrackerPointerLockedDeltas(t *testing.T) {
	tr := NewTracker()
	src := &mockPointerSource{}
	tr.AttachPointer(src)

	for range 3 {
		src.handler(gpucontext.PointerEvent{
			Type: gpucontext.PointerMove, X: 50, Y: 50, IsPrimary: true,
			DeltaX: 2, DeltaY: -1,
		})
	}
	if got := tr.Frame().Delta; got != gg.Pt(6, -3) {
		t.Errorf("Delta = %v, want (6, -3)", got)
	}
}

func TestTrackerPointerLeave(t *testing.T) {
	tr := NewTracker()
	src := &mockPointerSource{}
	tr.AttachPointer(src)

	src.handler(gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: 0, Y: 0, IsPrimary: true})
	src.handler(gpucontext.PointerEvent{Type: gpucontext.PointerLeave, IsPrimary: true})
	// Re-entering far away must not produce a jump.
	src.handler(gpucontext.PointerEvent{Type: gpucontext.PointerEnter, X: 300, Y: 300, IsPrimary: true})

	if got := tr.Frame().Delta; got != (gg.Point{}) {
		t.Errorf("Delta = %v, want zero", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	src := &mockEventSource{}
	tr.Attach(src)
	src.move(1, 1)
	src.press(gpucontext.MouseButtonLeft, 1, 1)
	src.move(3, 3)

	tr.Reset()
	if got := tr.Frame(); got != (Snapshot{}) {
		t.Errorf("Frame() after Reset = %+v, want zero", got)
	}
}

func TestTrackerConcurrentEvents(t *testing.T) {
	tr := NewTracker()
	src := &mockEventSource{}
	tr.Attach(src)
	src.move(0, 0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				src.scroll(0, -1)
			}
		}()
	}
	done := make(chan struct{})
	consumed := make(chan float64)
	go func() {
		var total float64
		for {
			select {
			case <-done:
				consumed <- total
				return
			default:
				total += tr.Frame().Scroll.Y
			}
		}
	}()
	wg.Wait()
	close(done)
	total := <-consumed + tr.Frame().Scroll.Y

	if want := float64(8 * 100 * LinePixels); total != want {
		t.Errorf("total scroll = %v, want %v", total, want)
	}
}

func TestStaticSource(t *testing.T) {
	want := Snapshot{Delta: gg.Pt(1, 2), Buttons: Primary}
	var src Source = Static(want)
	for range 2 {
		if got := src.Snapshot(); got != want {
			t.Errorf("Snapshot() = %+v, want %+v", got, want)
		}
	}
}

func TestButtonsHas(t *testing.T) {
	b := Primary | Middle
	if !b.Has(Primary) || !b.Has(Middle) || !b.Has(Primary|Middle) {
		t.Error("Has missed a held button")
	}
	if b.Has(Secondary) || b.Has(0) {
		t.Error("Has reported a button that is not held")
	}
}
