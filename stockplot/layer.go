// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candleview/stockval"
	"candleview/widgets"
	"image"
	"time"
)

// Frame holds everything a layer needs to paint one frame.
type Frame struct {
	Theme      *widgets.PlotTheme
	Location   *time.Location
	Size       image.Point
	Window     VisibleWindow
	Bars       []stockval.Bar // visible bars only
	OffsetX    float64
	BarWidth   float64
	PlotTop    float64
	PlotBottom float64 // y of the X axis
	projection projection
}

func newFrame(theme *widgets.PlotTheme, loc *time.Location, size image.Point, w VisibleWindow, bars []stockval.Bar,
	offsetX, barWidth float64) *Frame {
	f := &Frame{
		Theme:      theme,
		Location:   loc,
		Size:       size,
		Window:     w,
		Bars:       w.Bars(bars),
		OffsetX:    offsetX,
		BarWidth:   barWidth,
		PlotTop:    float64(theme.PaddingTop),
		PlotBottom: float64(size.Y) - float64(theme.PaddingBottom),
	}
	plotHeight := f.PlotBottom - f.PlotTop
	if plotHeight < 0 {
		plotHeight = 0
	}
	f.projection = projection{
		minPrice:    w.MinPrice,
		maxPrice:    w.MaxPrice,
		plotHeight:  plotHeight,
		plotBottom:  f.PlotBottom,
		offsetX:     offsetX,
		barWidth:    barWidth,
		leftPadding: float64(theme.PaddingLeft),
	}
	return f
}

// PriceGridLines is the number of intervals between horizontal grid lines.
const PriceGridLines = 10

// Price of horizontal grid line i, 0 <= i <= PriceGridLines.
func (f *Frame) gridPrice(i int) float64 {
	return f.Window.MinPrice + float64(i)*(f.Window.MaxPrice-f.Window.MinPrice)/PriceGridLines
}

// Layer paints one pass of a frame. Layers keep no state besides reusable buffers.
type Layer interface {
	Paint(s Surface, f *Frame)
}
