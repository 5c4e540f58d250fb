// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"candleview/config"
	"candleview/stockapi"
	"candleview/widgets"
	"context"
	"fmt"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"
)

type windowSize struct {
	X unit.Dp
	Y unit.Dp
}

// ChartApp shows the bars of a single source in one window.
type ChartApp struct {
	win          *app.Window
	size         windowSize
	config       config.Config
	source       string
	location     *time.Location
	loader       *BarLoader
	view         *ChartView
	messageField *widgets.MessageField
	widgetStack  []layout.StackChild
	plotTheme    *widgets.PlotTheme
	matTheme     *material.Theme
	cancel       context.CancelFunc
	logger       zerolog.Logger
}

func NewChartApp(c config.Config, ds stockapi.BarDataSource, logger zerolog.Logger) *ChartApp {
	return &ChartApp{
		config:       c,
		loader:       NewBarLoader(ds, logger),
		messageField: widgets.NewMessageField(),
		logger:       logger.With().Str("component", "app").Logger(),
	}
}

func (a *ChartApp) Initialize(ctx context.Context) error {
	err := a.reloadConfiguration()
	if err != nil {
		return err
	}
	a.view = NewChartView(a.plotTheme, a.location)
	a.createWindow()
	// Pending loads are cancelled on termination.
	ctx, a.cancel = context.WithCancel(ctx)
	a.loader.Initialize(ctx, a)
	a.loader.Load(a.source)
	return nil
}

func (a *ChartApp) reloadConfiguration() error {
	appConfig, err := a.config.Copy(false)
	if err != nil {
		return err
	}
	// Themes need to be set up first, because other settings might use them.
	a.matTheme, a.plotTheme = widgets.NewThemes(appConfig.LightTheme)
	a.plotTheme.DrawAxesBacking = !appConfig.ChartConfig.HideAxesBacking
	a.location, err = appConfig.ChartConfig.Location()
	if err != nil {
		a.logger.Warn().Err(err).Msg("using local time zone")
	}
	a.source = appConfig.DataSource.Source
	a.size.X = unit.Dp(appConfig.WindowConfig.Size.X)
	a.size.Y = unit.Dp(appConfig.WindowConfig.Size.Y)
	return nil
}

func (a *ChartApp) saveConfiguration() error {
	appConfig, err := a.config.Lock()
	if err != nil {
		return err
	}
	appConfig.WindowConfig.Size.X = int(a.size.X)
	appConfig.WindowConfig.Size.Y = int(a.size.Y)
	return a.config.Unlock(appConfig, false)
}

// Run handles window events until the window is closed. Initialize needs to
// be called first.
func (a *ChartApp) Run(ctx context.Context) {
	err := a.handleEvents(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg("terminating with error")
	}
	a.terminate()
}

func (a *ChartApp) Invalidate() {
	a.win.Invalidate()
}

func (a *ChartApp) createWindow() {
	size := a.size
	if size.X == 0 || size.Y == 0 {
		size.X = unit.Dp(config.DefaultWindowSize.X)
		size.Y = unit.Dp(config.DefaultWindowSize.Y)
	}
	a.win = app.NewWindow(
		app.Title(a.config.GetAppName()),
		app.Size(size.X, size.Y),
	)
}

func (a *ChartApp) handleEvents(ctx context.Context) error {
	var ops op.Ops

	for {
		switch e := a.win.NextEvent().(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			a.size.X = gtx.Metric.PxToDp(e.Size.X)
			a.size.Y = gtx.Metric.PxToDp(e.Size.Y)
			paint.Fill(gtx.Ops, a.matTheme.Bg)
			a.layoutChart(gtx)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
		if ctx.Err() != nil {
			a.win.Perform(system.ActionClose)
		}
	}
}

// statusText returns the message shown on top of the chart, if any.
func (a *ChartApp) statusText() (string, bool, bool) {
	status, err := a.loader.Status()
	switch status {
	case LoadLoading:
		return fmt.Sprintf("Loading %s ...", a.source), false, true
	case LoadFailed:
		return fmt.Sprintf("Loading bars failed: %v", err), true, true
	}
	return "", false, false
}

func (a *ChartApp) layoutChart(gtx layout.Context) {
	if bars, ok := a.loader.TakeBars(); ok {
		a.view.SetBars(bars)
	}
	a.widgetStack = a.widgetStack[:0]
	a.widgetStack = append(
		a.widgetStack,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return a.view.Layout(gtx, a.matTheme)
		}),
	)
	if txt, isError, ok := a.statusText(); ok {
		a.widgetStack = append(
			a.widgetStack,
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				return a.messageField.Layout(txt, isError, gtx, a.matTheme)
			}),
		)
	}
	layout.Stack{
		Alignment: layout.Center,
	}.Layout(
		gtx,
		a.widgetStack...,
	)
}

func (a *ChartApp) terminate() {
	err := a.saveConfiguration()
	if err != nil {
		a.logger.Error().Err(err).Msg("error saving configuration")
	}
	a.cancel()
	a.loader.Cleanup()
}
