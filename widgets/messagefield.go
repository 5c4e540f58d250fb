// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
)

type MessageField struct {
	InfoColor  color.NRGBA
	ErrorColor color.NRGBA
}

func NewMessageField() *MessageField {
	return &MessageField{
		InfoColor:  color.NRGBA{R: 60, G: 60, B: 60, A: 230},
		ErrorColor: color.NRGBA{R: 150, G: 0, B: 0, A: 250},
	}
}

// Layout draws txt on a colored box, using the error color if isError is set.
func (f *MessageField) Layout(txt string, isError bool, gtx layout.Context, th *material.Theme) layout.Dimensions {
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	lbl := material.Body1(th, txt)
	lbl.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	clipRect := image.Rectangle{Max: image.Point{X: gtx.Dp(50) + dims.Size.X, Y: gtx.Dp(40) + dims.Size.Y}}
	defer clip.Rect(clipRect).Push(gtx.Ops).Pop()
	bg := f.InfoColor
	if isError {
		bg = f.ErrorColor
	}
	paint.Fill(gtx.Ops, bg)

	textArea := op.Offset(image.Point{X: clipRect.Min.X + gtx.Dp(25), Y: clipRect.Min.Y + gtx.Dp(20)}).Push(gtx.Ops)
	// Run recorded drawing.
	call.Add(gtx.Ops)
	textArea.Pop()
	return layout.Dimensions{Size: clipRect.Size()}
}
