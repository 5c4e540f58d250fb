// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candleview/stockval"
	"math"
)

const (
	MinZoomLevel     = 0.5
	MaxZoomLevel     = 5.0
	DefaultZoomLevel = 1.0
)

// ViewportState owns zoom level and horizontal scroll offset.
// Every mutation through SetZoom or SetOffset invokes the change hook exactly once.
type ViewportState struct {
	zoomLevel    float64
	offsetX      float64 // pixels scrolled from the first bar
	totalBars    int
	visibleWidth float64
	onChange     func()
}

func NewViewportState(onChange func()) *ViewportState {
	return &ViewportState{
		zoomLevel: DefaultZoomLevel,
		onChange:  onChange,
	}
}

func (v *ViewportState) ZoomLevel() float64 {
	return v.zoomLevel
}

func (v *ViewportState) OffsetX() float64 {
	return v.offsetX
}

func (v *ViewportState) BarWidth() float64 {
	return BarWidth(v.zoomLevel)
}

// MaxOffset returns the largest offset which still shows content, never negative.
func (v *ViewportState) MaxOffset() float64 {
	return math.Max(0, float64(v.totalBars)*v.BarWidth()-v.visibleWidth)
}

// SetContent updates the content extent used for offset clamping.
// The offset is re-clamped, the change hook is not invoked.
func (v *ViewportState) SetContent(totalBars int, visibleWidth float64) {
	v.totalBars = max(totalBars, 0)
	v.visibleWidth = math.Max(visibleWidth, 0)
	v.offsetX = v.clampOffset(v.offsetX)
}

func (v *ViewportState) clampOffset(offsetX float64) float64 {
	if math.IsNaN(offsetX) {
		offsetX = v.offsetX
	}
	return stockval.ClampFloat64(offsetX, 0, v.MaxOffset())
}

func (v *ViewportState) SetZoom(zoomLevel float64) {
	if !math.IsNaN(zoomLevel) {
		v.zoomLevel = stockval.ClampFloat64(zoomLevel, MinZoomLevel, MaxZoomLevel)
	}
	// The bar width changed, so the maximum offset did as well.
	v.offsetX = v.clampOffset(v.offsetX)
	v.changed()
}

func (v *ViewportState) SetOffset(offsetX float64) {
	v.offsetX = v.clampOffset(offsetX)
	v.changed()
}

// Reset restores default zoom and offset without invoking the change hook.
func (v *ViewportState) Reset() {
	v.zoomLevel = DefaultZoomLevel
	v.offsetX = 0
}

func (v *ViewportState) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}

// VisibleRange returns the index of the first visible bar and the number of
// visible bars. count is zero if no bar is visible.
func (v *ViewportState) VisibleRange(totalBars int, surfaceWidth, leftPadding float64) (first, count int) {
	barWidth := v.BarWidth()
	first = int(math.Floor(v.offsetX / barWidth))
	if first < 0 {
		first = 0
	}
	if first >= totalBars {
		return first, 0
	}
	plotWidth := surfaceWidth - leftPadding
	if plotWidth <= 0 {
		return first, 0
	}
	count = min(totalBars-first, int(math.Ceil(plotWidth/barWidth)))
	return first, count
}
