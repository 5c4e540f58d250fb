// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image/color"
)

// PlotTheme holds colours and metrics of the candlestick chart.
// Paddings, margins and line widths are given in dp, the font size in sp.
// Use Scaled to obtain pixel values.
type PlotTheme struct {
	PaddingLeft      float32 // price label gutter
	PaddingTop       float32
	PaddingBottom    float32 // date label band below the X axis
	TextMargin       float32
	LabelLineSpacing float32
	FontSize         int
	GridLineWidth    float32
	AxesLineWidth    float32
	WickLineWidth    float32
	DrawAxesBacking  bool
	BackgroundColor  color.NRGBA
	AxesBackingColor color.NRGBA
	AxesColor        color.NRGBA
	GridColor        color.NRGBA
	CandleUpColor    color.NRGBA
	CandleDownColor  color.NRGBA
	AxesXtextColor   color.NRGBA
	AxesYtextColor   color.NRGBA
}

// Scaled returns a copy with paddings, margins and line widths converted to
// pixels. Non-positive factors are treated as 1.
func (th *PlotTheme) Scaled(pxPerDp float32) *PlotTheme {
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	scaled := *th
	scaled.PaddingLeft *= pxPerDp
	scaled.PaddingTop *= pxPerDp
	scaled.PaddingBottom *= pxPerDp
	scaled.TextMargin *= pxPerDp
	scaled.LabelLineSpacing *= pxPerDp
	scaled.GridLineWidth *= pxPerDp
	scaled.AxesLineWidth *= pxPerDp
	scaled.WickLineWidth *= pxPerDp
	return &scaled
}

func newBasePlotTheme() *PlotTheme {
	return &PlotTheme{
		PaddingLeft:      50,
		PaddingTop:       20,
		PaddingBottom:    50,
		TextMargin:       5,
		LabelLineSpacing: 2,
		FontSize:         10,
		GridLineWidth:    0.5,
		AxesLineWidth:    1,
		WickLineWidth:    1,
		DrawAxesBacking:  true,
	}
}

func NewDarkPlotTheme() *PlotTheme {
	th := newBasePlotTheme()
	th.BackgroundColor = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 255}
	th.AxesBackingColor = th.BackgroundColor
	th.AxesColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	th.GridColor = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	th.CandleUpColor = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	th.CandleDownColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	th.AxesXtextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	th.AxesYtextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	return th
}

func NewLightPlotTheme() *PlotTheme {
	th := newBasePlotTheme()
	th.BackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	th.AxesBackingColor = th.BackgroundColor
	th.AxesColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	th.GridColor = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 255}
	th.CandleUpColor = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	th.CandleDownColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	th.AxesXtextColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	th.AxesYtextColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	return th
}

func (th *PlotTheme) GetCandleColor(isGreenCandle bool) color.NRGBA {
	if isGreenCandle {
		return th.CandleUpColor
	}
	return th.CandleDownColor
}
