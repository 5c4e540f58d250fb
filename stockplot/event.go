// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
	// The pointer was lost, e.g. it left the window while pressed.
	PointerCancel
)

// PointerEvent carries the horizontal position of the pointer in surface pixels.
type PointerEvent struct {
	Kind PointerKind
	X    float64
}

// WheelEvent carries the vertical scroll delta, positive values scroll down.
type WheelEvent struct {
	DeltaY float64
}
