// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"strconv"
	"time"

	"gioui.org/f32"
)

const (
	DateLabelFormat = "02.01.2006"
	TimeLabelFormat = "15:04:05"
	// Approximate number of date labels per frame.
	DateLabelCount = 10
)

type LabelLayer struct {
}

func formatPriceLabel(price float64) string {
	return strconv.FormatFloat(price, 'f', 3, 64)
}

// DateLabelStride returns the distance in bars between two date labels.
func DateLabelStride(visibleBarCount int) int {
	return max(1, visibleBarCount/DateLabelCount)
}

func (l *LabelLayer) Paint(s Surface, f *Frame) {
	if f.Window.Empty() {
		return
	}
	l.paintYaxesText(s, f)
	l.paintXaxesText(s, f)
}

func (l *LabelLayer) paintYaxesText(s Surface, f *Frame) {
	for i := 0; i <= PriceGridLines; i++ {
		price := f.gridPrice(i)
		labelText := formatPriceLabel(price)
		textSize := s.MeasureText(labelText)
		y := float32(f.projection.getYpos(price)) - textSize.Y/2
		s.FillText(labelText, f32.Pt(f.Theme.TextMargin, y), f.Theme.AxesYtextColor)
	}
}

func (l *LabelLayer) paintXaxesText(s Surface, f *Frame) {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	dateY := float32(f.PlotBottom) + f.Theme.TextMargin
	for i := 0; i < len(f.Bars); i += DateLabelStride(len(f.Bars)) {
		t := f.Bars[i].Timestamp().In(loc)
		dateText := t.Format(DateLabelFormat)
		timeText := t.Format(TimeLabelFormat)
		dateSize := s.MeasureText(dateText)
		timeSize := s.MeasureText(timeText)
		// Both lines share the left edge of the wider one.
		x := float32(f.projection.getXpos(i)) - max(dateSize.X, timeSize.X)/2
		s.FillText(dateText, f32.Pt(x, dateY), f.Theme.AxesXtextColor)
		timeY := dateY + dateSize.Y + f.Theme.LabelLineSpacing
		s.FillText(timeText, f32.Pt(x, timeY), f.Theme.AxesXtextColor)
	}
}
