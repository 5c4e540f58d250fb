// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package initapp

import (
	"candleview/brokers/forextester"
	"candleview/brokers/parquetfile"
	"candleview/cache"
	"candleview/config"
	"candleview/snapshot"
	"candleview/stockapi"
	"candleview/stockval"
	"candleview/stockviz"
	"candleview/widgets"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitApp selects the data source and starts either the chart window or a
// headless snapshot.
type InitApp struct {
	config     config.Config
	dataSource stockapi.BarDataSource
	logger     zerolog.Logger
}

func NewInitApp(c config.Config) *InitApp {
	return &InitApp{
		config: config.WithEnvironment(c),
		logger: log.With().Str("component", "init").Logger(),
	}
}

// NewDataSource returns the data source for the configured source string.
func NewDataSource(appConfig config.AppConfig, logger zerolog.Logger) (stockapi.BarDataSource, error) {
	if stockval.IsParquetSource(appConfig.DataSource.Source) {
		return parquetfile.NewDataSource(logger), nil
	}
	var barCache cache.BarCache
	if !appConfig.DataSource.DisableCache && appConfig.DataSource.CacheHours > 0 {
		var err error
		barCache, err = cache.NewLocalBarCache(forextester.GetSourceId(),
			time.Hour*time.Duration(appConfig.DataSource.CacheHours))
		if err != nil {
			return nil, err
		}
	}
	return forextester.NewDataSource(barCache, logger), nil
}

func (a *InitApp) Initialize() error {
	appConfig, err := a.config.Copy(false)
	if err != nil {
		return fmt.Errorf("error reading configuration: %w", err)
	}
	a.dataSource, err = NewDataSource(appConfig, log.Logger)
	if err != nil {
		return err
	}
	err = a.dataSource.ReadConfig(a.config)
	if err != nil {
		return fmt.Errorf("error configuring data source: %w", err)
	}
	a.logger.Info().
		Str("source", appConfig.DataSource.Source).
		Str("kind", string(a.dataSource.GetSourceId())).
		Msg("data source selected")
	return nil
}

// Run shows the chart window until it is closed.
func (a *InitApp) Run(ctx context.Context) error {
	s := stockviz.NewChartApp(a.config, a.dataSource, log.Logger)
	err := s.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("app initialization failed: %w", err)
	}
	s.Run(ctx)
	return nil
}

func (a *InitApp) loadBars(ctx context.Context) (config.AppConfig, []stockval.Bar, error) {
	appConfig, err := a.config.Copy(false)
	if err != nil {
		return appConfig, nil, err
	}
	return appConfig, a.dataSource.LoadBars(ctx, appConfig.DataSource.Source), nil
}

// Snapshot renders the initial chart of the configured source into a png file.
func (a *InitApp) Snapshot(ctx context.Context, path string) error {
	appConfig, bars, err := a.loadBars(ctx)
	if err != nil {
		return err
	}
	_, plotTheme := widgets.NewThemes(appConfig.LightTheme)
	plotTheme.DrawAxesBacking = !appConfig.ChartConfig.HideAxesBacking
	loc, err := appConfig.ChartConfig.Location()
	if err != nil {
		a.logger.Warn().Err(err).Msg("using local time zone")
	}
	size := image.Point{X: appConfig.WindowConfig.Size.X, Y: appConfig.WindowConfig.Size.Y}
	err = snapshot.RenderFile(path, bars, plotTheme, size, loc)
	if err != nil {
		return err
	}
	a.logger.Info().Str("file", path).Int("bars", len(bars)).Msg("snapshot written")
	return nil
}

// Export stores the bars of the configured source in a parquet file.
func (a *InitApp) Export(ctx context.Context, path string) error {
	_, bars, err := a.loadBars(ctx)
	if err != nil {
		return err
	}
	err = parquetfile.WriteBars(path, bars)
	if err != nil {
		return err
	}
	a.logger.Info().Str("file", path).Int("bars", len(bars)).Msg("bars exported")
	return nil
}
