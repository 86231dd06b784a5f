// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import "github.com/gogpu/gg"

// Buttons is the set of pointer buttons held down.
type Buttons uint8

// Pointer buttons.
const (
	Primary Buttons = 1 << iota
	Secondary
	Middle
)

// Has reports whether every button in b is held.
func (s Buttons) Has(b Buttons) bool {
	return b != 0 && s&b == b
}

// Snapshot is the pointer state for one frame.
type Snapshot struct {
	// Pos is the last known pointer position in window coordinates.
	Pos gg.Point
	// Delta is the pointer movement since the previous frame.
	Delta gg.Point
	// Buttons are the buttons held at the end of the frame.
	Buttons Buttons
	// Scroll is the wheel movement since the previous frame in pixels.
	// Positive Y means the wheel was turned forward (away from the user).
	Scroll gg.Point
}

// Source provides one Snapshot per frame.
type Source interface {
	Snapshot() Snapshot
}

// Static is a Source that always reports the same snapshot.
type Static Snapshot

// Snapshot implements Source.
func (s Static) Snapshot() Snapshot {
	return Snapshot(s)
}
