// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// Zoom change per wheel event.
const ZoomStep = 0.1

// InputController translates pointer and wheel events into viewport mutations.
// Panning is a two state machine, wheel zoom is stateless.
type InputController struct {
	viewport *ViewportState
	state    DragState
	lastX    float64
}

func NewInputController(v *ViewportState) *InputController {
	return &InputController{viewport: v}
}

func (c *InputController) State() DragState {
	return c.state
}

// Listening reports whether events of the given kind are consumed in the current state.
// Move, release and cancel are only consumed while dragging.
// Reset abandons a running drag.
func (c *InputController) Reset() {
	c.state = DragIdle
	c.lastX = 0
}

func (c *InputController) Listening(kind PointerKind) bool {
	switch kind {
	case PointerPress:
		return true
	case PointerMove, PointerRelease, PointerCancel:
		return c.state == DragDragging
	default:
		return false
	}
}

func (c *InputController) HandlePointer(e PointerEvent) {
	if !c.Listening(e.Kind) {
		return
	}
	switch e.Kind {
	case PointerPress:
		c.state = DragDragging
		c.lastX = e.X
	case PointerMove:
		dx := e.X - c.lastX
		c.lastX = e.X
		c.viewport.SetOffset(c.viewport.OffsetX() - dx)
	case PointerRelease, PointerCancel:
		c.state = DragIdle
	}
}

func (c *InputController) HandleWheel(e WheelEvent) {
	var delta float64
	switch {
	case e.DeltaY > 0:
		delta = -ZoomStep
	case e.DeltaY < 0:
		delta = ZoomStep
	default:
		return
	}
	c.viewport.SetZoom(c.viewport.ZoomLevel() + delta)
}
