// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candleview/stockval"
	"candleview/widgets"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Note that this is not a generic plotting library.
// It renders a single candlestick series with time on the X axis.

// ChartRenderer owns the viewport and draws frames onto a surface.
// It is not thread safe, all calls need to be done by the goroutine owning the surface.
type ChartRenderer struct {
	Theme    *widgets.PlotTheme
	viewport *ViewportState
	input    *InputController
	surface  Surface
	location *time.Location
	bars     []stockval.Bar
	layers   []Layer
	drawing  bool
	logger   zerolog.Logger
}

func NewChartRenderer(t *widgets.PlotTheme, s Surface) *ChartRenderer {
	r := &ChartRenderer{
		Theme:    t,
		surface:  s,
		location: time.Local,
		// Fixed painting order: grid beneath candles beneath axes and labels.
		layers: []Layer{
			&GridLayer{},
			&CandleLayer{},
			&AxisLayer{},
			&LabelLayer{},
		},
		logger: log.With().Str("component", "chart").Logger(),
	}
	r.viewport = NewViewportState(r.Draw)
	r.input = NewInputController(r.viewport)
	r.updateContent()
	return r
}

func (r *ChartRenderer) Viewport() *ViewportState {
	return r.viewport
}

func (r *ChartRenderer) Input() *InputController {
	return r.input
}

func (r *ChartRenderer) GetZoomLevel() float64 {
	return r.viewport.ZoomLevel()
}

func (r *ChartRenderer) SetZoomLevel(zoomLevel float64) {
	r.viewport.SetZoom(zoomLevel)
}

func (r *ChartRenderer) SetOffset(offsetX float64) {
	r.viewport.SetOffset(offsetX)
}

// SetLocation sets the time zone of the date labels.
func (r *ChartRenderer) SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	r.location = loc
}

// SetSurface replaces the drawing target, e.g. after a window resize.
// Nothing is drawn.
func (r *ChartRenderer) SetSurface(s Surface) {
	r.surface = s
	r.updateContent()
}

func (r *ChartRenderer) Bars() []stockval.Bar {
	return r.bars
}

// SetBars replaces the bar sequence, resets the viewport and draws one frame.
// The slice is not modified and must not be modified by the caller afterwards.
func (r *ChartRenderer) SetBars(bars []stockval.Bar) {
	r.bars = bars
	r.viewport.Reset()
	r.input.Reset()
	r.updateContent()
	r.logger.Debug().Int("bars", len(bars)).Msg("bar sequence replaced")
	r.Draw()
}

func (r *ChartRenderer) surfaceWidth() float64 {
	if r.surface == nil {
		return 0
	}
	return float64(r.surface.Size().X)
}

func (r *ChartRenderer) updateContent() {
	r.viewport.SetContent(len(r.bars), r.surfaceWidth()-float64(r.Theme.PaddingLeft))
}

// VisibleWindow computes the window of the current viewport.
func (r *ChartRenderer) VisibleWindow() VisibleWindow {
	first, count := r.viewport.VisibleRange(len(r.bars), r.surfaceWidth(), float64(r.Theme.PaddingLeft))
	return computeVisibleWindow(r.bars, first, count)
}

// Draw renders one complete frame. Calls while a frame is being drawn are ignored.
func (r *ChartRenderer) Draw() {
	if r.surface == nil || r.drawing {
		return
	}
	r.drawing = true
	defer func() { r.drawing = false }()

	r.surface.Clear(r.Theme.BackgroundColor)
	f := newFrame(
		r.Theme,
		r.location,
		r.surface.Size(),
		r.VisibleWindow(),
		r.bars,
		r.viewport.OffsetX(),
		r.viewport.BarWidth(),
	)
	for _, l := range r.layers {
		l.Paint(r.surface, f)
	}
	r.surface.Present()
}
