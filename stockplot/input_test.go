// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragPan(t *testing.T) {
	v, changes := newTestViewport(200, 1150)
	v.SetOffset(100)
	c := NewInputController(v)
	assert.Equal(t, DragIdle, c.State())

	c.HandlePointer(PointerEvent{Kind: PointerPress, X: 100})
	assert.Equal(t, DragDragging, c.State())
	assert.Equal(t, 1, *changes)

	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 150})
	assert.Equal(t, 50.0, v.OffsetX())
	assert.Equal(t, 2, *changes)

	// Clamped at zero.
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 200})
	assert.Equal(t, 0.0, v.OffsetX())
	assert.Equal(t, 3, *changes)

	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 120})
	assert.Equal(t, 80.0, v.OffsetX())
	assert.Equal(t, 4, *changes)

	c.HandlePointer(PointerEvent{Kind: PointerRelease, X: 120})
	assert.Equal(t, DragIdle, c.State())

	// Moves after release are ignored.
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 500})
	assert.Equal(t, 80.0, v.OffsetX())
	assert.Equal(t, 4, *changes)
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	v, changes := newTestViewport(200, 1150)
	c := NewInputController(v)
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 10})
	c.HandlePointer(PointerEvent{Kind: PointerRelease, X: 10})
	assert.Equal(t, DragIdle, c.State())
	assert.Equal(t, 0, *changes)
}

func TestListening(t *testing.T) {
	v, _ := newTestViewport(200, 1150)
	c := NewInputController(v)
	assert.True(t, c.Listening(PointerPress))
	assert.False(t, c.Listening(PointerMove))
	assert.False(t, c.Listening(PointerRelease))
	assert.False(t, c.Listening(PointerCancel))

	c.HandlePointer(PointerEvent{Kind: PointerPress, X: 0})
	assert.True(t, c.Listening(PointerMove))
	assert.True(t, c.Listening(PointerRelease))
	assert.True(t, c.Listening(PointerCancel))

	c.HandlePointer(PointerEvent{Kind: PointerRelease, X: 0})
	assert.False(t, c.Listening(PointerMove))
	assert.False(t, c.Listening(PointerRelease))
}

func TestCancelEndsDrag(t *testing.T) {
	v, _ := newTestViewport(200, 1150)
	c := NewInputController(v)
	c.HandlePointer(PointerEvent{Kind: PointerPress, X: 300})
	c.HandlePointer(PointerEvent{Kind: PointerCancel})
	assert.Equal(t, DragIdle, c.State())
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 0})
	assert.Equal(t, 0.0, v.OffsetX())
}

func TestWheelZoom(t *testing.T) {
	v, changes := newTestViewport(200, 1150)
	c := NewInputController(v)

	c.HandleWheel(WheelEvent{DeltaY: 120})
	assert.InDelta(t, 0.9, v.ZoomLevel(), 0.000001)
	assert.Equal(t, 1, *changes)

	c.HandleWheel(WheelEvent{DeltaY: -120})
	c.HandleWheel(WheelEvent{DeltaY: -3})
	assert.InDelta(t, 1.1, v.ZoomLevel(), 0.000001)
	assert.Equal(t, 3, *changes)
}

func TestWheelZoomZeroDelta(t *testing.T) {
	v, changes := newTestViewport(200, 1150)
	c := NewInputController(v)
	c.HandleWheel(WheelEvent{DeltaY: 0})
	assert.Equal(t, 1.0, v.ZoomLevel())
	assert.Equal(t, 0, *changes)
}

func TestWheelZoomClamps(t *testing.T) {
	v, _ := newTestViewport(200, 1150)
	c := NewInputController(v)
	v.SetZoom(MinZoomLevel)
	c.HandleWheel(WheelEvent{DeltaY: 120})
	assert.Equal(t, MinZoomLevel, v.ZoomLevel())
	v.SetZoom(MaxZoomLevel)
	c.HandleWheel(WheelEvent{DeltaY: -120})
	assert.Equal(t, MaxZoomLevel, v.ZoomLevel())
}
