// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"candleview/stockplot"
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"
)

// GioSurface records a chart frame into the ops of a layout context.
// A new surface is needed for each Gio frame.
type GioSurface struct {
	gtx       layout.Context
	th        *material.Theme
	fontSize  int
	size      image.Point
	macro     op.MacroOp
	recording bool
	call      op.CallOp
	presented bool
	segments  []stroke.Segment
}

func NewGioSurface(gtx layout.Context, th *material.Theme, fontSize int, size image.Point) *GioSurface {
	gtx.Constraints.Min = image.Point{} // in order to be able to calculate text size
	return &GioSurface{
		gtx:      gtx,
		th:       th,
		fontSize: fontSize,
		size:     size,
	}
}

func (s *GioSurface) Size() image.Point {
	return s.size
}

func (s *GioSurface) Clear(bg color.NRGBA) {
	if s.recording {
		// The previous frame is dropped.
		s.macro.Stop()
	}
	s.macro = op.Record(s.gtx.Ops)
	s.recording = true
	s.presented = false
	paint.FillShape(s.gtx.Ops, bg, clip.Rect{Max: s.size}.Op())
}

func (s *GioSurface) Stroke(p stockplot.Path, width float32, c color.NRGBA) {
	s.segments = s.segments[:0]
	for _, seg := range p.Segments {
		switch seg.Kind {
		case stockplot.SegmentMoveTo:
			s.segments = append(s.segments, stroke.MoveTo(seg.Point))
		case stockplot.SegmentLineTo:
			s.segments = append(s.segments, stroke.LineTo(seg.Point))
		}
	}
	area := stroke.Stroke{
		Path:  stroke.Path{Segments: s.segments},
		Width: width,
		Cap:   stroke.FlatCap,
	}.Op(s.gtx.Ops)
	paint.FillShape(s.gtx.Ops, c, area)
}

func roundPt(p f32.Point) image.Point {
	return image.Point{X: int(math.Round(float64(p.X))), Y: int(math.Round(float64(p.Y)))}
}

func (s *GioSurface) FillRect(r stockplot.Rect, c color.NRGBA) {
	rect := image.Rectangle{Min: roundPt(r.Min), Max: roundPt(r.Max)}
	if rect.Dy() == 0 && r.Dy() > 0 {
		rect.Max.Y++
	}
	if rect.Dx() == 0 && r.Dx() > 0 {
		rect.Max.X++
	}
	paint.FillShape(s.gtx.Ops, c, clip.Rect(rect).Op())
}

func (s *GioSurface) recordLabelText(labelText string, c color.NRGBA) (op.CallOp, image.Point) {
	macro := op.Record(s.gtx.Ops)
	lbl := material.Label(
		s.th,
		unit.Sp(s.fontSize),
		labelText,
	)
	lbl.Color = c
	lbl.Alignment = text.Start
	dims := lbl.Layout(s.gtx)
	return macro.Stop(), dims.Size
}

func (s *GioSurface) FillText(str string, pos f32.Point, c color.NRGBA) {
	call, _ := s.recordLabelText(str, c)
	textArea := op.Offset(roundPt(pos)).Push(s.gtx.Ops)
	call.Add(s.gtx.Ops)
	textArea.Pop()
}

func (s *GioSurface) MeasureText(str string) f32.Point {
	// The recorded call is dropped.
	_, size := s.recordLabelText(str, color.NRGBA{})
	return f32.Point{X: float32(size.X), Y: float32(size.Y)}
}

func (s *GioSurface) Present() {
	if !s.recording {
		return
	}
	s.call = s.macro.Stop()
	s.recording = false
	s.presented = true
}

// Presented reports whether a complete frame was recorded.
func (s *GioSurface) Presented() bool {
	return s.presented
}

// Add adds the last presented frame to ops.
func (s *GioSurface) Add(ops *op.Ops) {
	if s.presented {
		s.call.Add(ops)
	}
}

var _ stockplot.Surface = (*GioSurface)(nil)
