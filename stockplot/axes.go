// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"gioui.org/f32"
)

type AxisLayer struct {
}

func (l *AxisLayer) Paint(s Surface, f *Frame) {
	left := f.Theme.PaddingLeft
	axisY := float32(f.PlotBottom)
	if f.Theme.DrawAxesBacking {
		// Keep grid lines and candles out of the price label gutter.
		s.FillRect(Rect{Max: f32.Pt(left, float32(f.Size.Y))}, f.Theme.AxesBackingColor)
	}
	var path Path
	path.Segments = []Segment{
		MoveTo(f32.Pt(left, 0)),
		LineTo(f32.Pt(left, axisY)),
		MoveTo(f32.Pt(0, axisY)),
		LineTo(f32.Pt(float32(f.Size.X), axisY)),
	}
	s.Stroke(path, f.Theme.AxesLineWidth, f.Theme.AxesColor)
}
