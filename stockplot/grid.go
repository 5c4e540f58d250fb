// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"math"

	"gioui.org/f32"
)

type GridLayer struct {
	segments []Segment
}

func (l *GridLayer) Paint(s Surface, f *Frame) {
	left := float64(f.Theme.PaddingLeft)
	right := float64(f.Size.X)
	var path Path
	// Reuse segment buffer from previous frame.
	path.Segments = l.segments[:0]
	if f.BarWidth > 0 && right > left {
		numLines := int(math.Ceil((right - left) / f.BarWidth))
		for i := 0; i <= numLines; i++ {
			x := f.projection.getXpos(i)
			if x < left || x > right {
				continue
			}
			path.Segments = append(path.Segments, MoveTo(f32.Pt(float32(x), 0)))
			path.Segments = append(path.Segments, LineTo(f32.Pt(float32(x), float32(f.PlotBottom))))
		}
	}
	// Price lines depend on the visible price range.
	if !f.Window.Empty() {
		for i := 0; i <= PriceGridLines; i++ {
			y := float32(f.projection.getYpos(f.gridPrice(i)))
			path.Segments = append(path.Segments, MoveTo(f32.Pt(float32(left), y)))
			path.Segments = append(path.Segments, LineTo(f32.Pt(float32(right), y)))
		}
	}
	l.segments = path.Segments
	if len(path.Segments) > 0 {
		s.Stroke(path, f.Theme.GridLineWidth, f.Theme.GridColor)
	}
}
