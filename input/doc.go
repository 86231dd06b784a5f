// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input turns host window events into per-frame pointer snapshots.
//
// Charts read input once per frame: how far the pointer moved since the
// previous frame, which buttons are held and how far the wheel turned. A
// Tracker collects gpucontext events as they arrive and hands out that
// summary on each Frame call.
//
//	tracker := input.NewTracker()
//	tracker.Attach(app.EventSource())
//	...
//	snap := tracker.Frame() // once per redraw
package input
