// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candleview/stockval"
	"image/color"
	"math"

	"gioui.org/f32"
)

type candleBody struct {
	rect    Rect
	isGreen bool
}

type CandleLayer struct {
	greenWickSegments []Segment
	redWickSegments   []Segment
	bodies            []candleBody
}

func (l *CandleLayer) Paint(s Surface, f *Frame) {
	l.greenWickSegments = l.greenWickSegments[:0]
	l.redWickSegments = l.redWickSegments[:0]
	l.bodies = l.bodies[:0]
	bodyWidth := getCandleWidth(f.BarWidth)
	for i, b := range f.Bars {
		l.plotSingleCandle(i, b, bodyWidth, f.projection)
	}
	// Wicks first, bodies are painted on top.
	l.strokeWickSegments(s, l.greenWickSegments, f.Theme.WickLineWidth, f.Theme.GetCandleColor(true))
	l.strokeWickSegments(s, l.redWickSegments, f.Theme.WickLineWidth, f.Theme.GetCandleColor(false))
	for _, body := range l.bodies {
		s.FillRect(body.rect, f.Theme.GetCandleColor(body.isGreen))
	}
}

func (l *CandleLayer) plotSingleCandle(i int, b stockval.Bar, bodyWidth float64, proj projection) {
	xPos := proj.getCenterXpos(i)
	y1Pos := proj.getYpos(b.Low)
	y2Pos := proj.getYpos(b.High)
	if math.Round(y1Pos) == math.Round(y2Pos) {
		y2Pos-- // Zero length lines are not drawn.
	}
	y3Pos := proj.getYpos(b.Open)
	y4Pos := proj.getYpos(b.Close)
	isGreenCandle := stockval.IsGreenCandle(b.Open, b.Close)

	seg1 := MoveTo(f32.Pt(float32(xPos), float32(y1Pos)))
	seg2 := LineTo(f32.Pt(float32(xPos), float32(y2Pos)))
	if isGreenCandle {
		l.greenWickSegments = append(l.greenWickSegments, seg1, seg2)
	} else {
		l.redWickSegments = append(l.redWickSegments, seg1, seg2)
	}

	// Draw body using a minimum height of 1 px.
	top := math.Min(y3Pos, y4Pos)
	bottom := math.Max(y3Pos, y4Pos)
	if bottom-top < 1 {
		bottom = top + 1
	}
	l.bodies = append(l.bodies, candleBody{
		rect: Rect{
			Min: f32.Pt(float32(xPos-bodyWidth/2), float32(top)),
			Max: f32.Pt(float32(xPos+bodyWidth/2), float32(bottom)),
		},
		isGreen: isGreenCandle,
	})
}

func (l *CandleLayer) strokeWickSegments(s Surface, seg []Segment, lineWidth float32, lineColor color.NRGBA) {
	if len(seg) == 0 {
		return
	}
	var path Path
	path.Segments = seg
	s.Stroke(path, lineWidth, lineColor)
}
