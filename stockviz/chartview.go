// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"candleview/stockplot"
	"candleview/stockval"
	"candleview/widgets"
	"image"
	"math"
	"time"

	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"
)

// ChartView connects a chart renderer to the Gio frame loop.
type ChartView struct {
	PlotTheme   *widgets.PlotTheme
	renderer    *stockplot.ChartRenderer
	surface     *GioSurface
	pxPerDp     float32
	pendingBars []stockval.Bar
	hasPending  bool
}

func NewChartView(theme *widgets.PlotTheme, loc *time.Location) *ChartView {
	v := &ChartView{
		PlotTheme: theme,
		renderer:  stockplot.NewChartRenderer(theme, nil),
	}
	v.renderer.SetLocation(loc)
	return v
}

func (v *ChartView) Renderer() *stockplot.ChartRenderer {
	return v.renderer
}

// SetBars replaces the bars shown with the next frame.
func (v *ChartView) SetBars(bars []stockval.Bar) {
	v.pendingBars = bars
	v.hasPending = true
}

func (v *ChartView) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	gtx.Constraints.Min = image.Point{}
	size := gtx.Constraints.Max
	if v.pxPerDp != gtx.Metric.PxPerDp {
		v.pxPerDp = gtx.Metric.PxPerDp
		v.renderer.Theme = v.PlotTheme.Scaled(v.pxPerDp)
	}
	surface := NewGioSurface(gtx, th, v.PlotTheme.FontSize, size)
	v.surface = surface
	v.renderer.SetSurface(surface)
	if v.hasPending {
		v.renderer.SetBars(v.pendingBars)
		v.pendingBars = nil
		v.hasPending = false
	}
	v.handleInput(gtx)
	if !surface.Presented() {
		v.renderer.Draw()
	}
	surface.Add(gtx.Ops)
	v.registerInputOps(gtx.Ops, size)
	return layout.Dimensions{Size: size}
}

func (v *ChartView) registerInputOps(ops *op.Ops, size image.Point) {
	area := clip.Rect(image.Rectangle{Max: size}).Push(ops)
	pointer.InputOp{
		Tag:   v,
		Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
		ScrollBounds: image.Rectangle{
			Min: image.Point{
				X: 0,
				Y: math.MinInt32,
			},
			Max: image.Point{
				X: 0,
				Y: math.MaxInt32,
			},
		},
	}.Add(ops)
	pointer.CursorGrab.Add(ops)
	area.Pop()
}

// translatePointerEvent maps Gio pointer events to chart input events.
func translatePointerEvent(e pointer.Event) (stockplot.PointerEvent, bool) {
	x := float64(e.Position.X)
	switch e.Kind {
	case pointer.Press:
		return stockplot.PointerEvent{Kind: stockplot.PointerPress, X: x}, true
	case pointer.Drag:
		return stockplot.PointerEvent{Kind: stockplot.PointerMove, X: x}, true
	case pointer.Release:
		return stockplot.PointerEvent{Kind: stockplot.PointerRelease, X: x}, true
	case pointer.Cancel:
		return stockplot.PointerEvent{Kind: stockplot.PointerCancel, X: x}, true
	}
	return stockplot.PointerEvent{}, false
}

func (v *ChartView) handleInput(gtx layout.Context) {
	input := v.renderer.Input()
	for _, gtxEvent := range gtx.Events(v) {
		e, ok := gtxEvent.(pointer.Event)
		if !ok {
			continue
		}
		if e.Kind == pointer.Scroll {
			input.HandleWheel(stockplot.WheelEvent{DeltaY: float64(e.Scroll.Y)})
			continue
		}
		if pe, ok := translatePointerEvent(e); ok {
			input.HandlePointer(pe)
		}
	}
}
