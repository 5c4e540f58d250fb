// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"image"
	"image/color"

	"gioui.org/f32"
)

type SegmentKind int

const (
	SegmentMoveTo SegmentKind = iota
	SegmentLineTo
)

type Segment struct {
	Kind  SegmentKind
	Point f32.Point
}

func MoveTo(p f32.Point) Segment {
	return Segment{Kind: SegmentMoveTo, Point: p}
}

func LineTo(p f32.Point) Segment {
	return Segment{Kind: SegmentLineTo, Point: p}
}

// Path is a sequence of polylines, each starting with a MoveTo.
type Path struct {
	Segments []Segment
}

type Rect struct {
	Min f32.Point
	Max f32.Point
}

func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Surface is an immediate mode 2D drawing target. The origin is the top left
// corner, y grows downwards. All coordinates are pixels.
// Text positions denote the top left corner of the text box.
type Surface interface {
	Size() image.Point
	Clear(bg color.NRGBA)
	Stroke(p Path, width float32, c color.NRGBA)
	FillRect(r Rect, c color.NRGBA)
	FillText(s string, pos f32.Point, c color.NRGBA)
	MeasureText(s string) f32.Point
	// Present marks the end of a frame.
	Present()
}
