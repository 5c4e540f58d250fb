// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package initapp

import (
	"candleview/brokers/forextester"
	"candleview/brokers/parquetfile"
	"candleview/config"
	"candleview/mock"
	"candleview/stockval"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBars = []stockval.Bar{
	{Time: 1700000000000, Open: 100, High: 110, Low: 90, Close: 105},
	{Time: 1700000060000, Open: 105, High: 108, Low: 95, Close: 97},
	{Time: 1700000120000, Open: 97, High: 120, Low: 96, Close: 118},
}

func TestNewDataSource(t *testing.T) {
	logger, _ := mock.NewLogger()
	appConfig := config.NewAppConfig()
	appConfig.DataSource.DisableCache = true
	ds, err := NewDataSource(appConfig, logger)
	require.NoError(t, err)
	assert.Equal(t, forextester.GetSourceId(), ds.GetSourceId())

	appConfig.DataSource.Source = "/data/USDJPY.Parquet"
	ds, err = NewDataSource(appConfig, logger)
	require.NoError(t, err)
	assert.Equal(t, parquetfile.GetSourceId(), ds.GetSourceId())
}

func newParquetInitApp(t *testing.T) *InitApp {
	t.Setenv(config.EnvSource, "")
	t.Setenv(config.EnvLightTheme, "")
	dir := t.TempDir()
	source := filepath.Join(dir, "bars.parquet")
	require.NoError(t, parquetfile.WriteBars(source, testBars))
	c := mock.NewDataSourceConfig(source)
	appConfig, _ := c.Lock()
	appConfig.WindowConfig.Size.X = 300
	appConfig.WindowConfig.Size.Y = 200
	_ = c.Unlock(appConfig, false)
	a := NewInitApp(c)
	require.NoError(t, a.Initialize())
	return a
}

func TestSnapshot(t *testing.T) {
	a := newParquetInitApp(t)
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, a.Snapshot(context.Background(), path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestExport(t *testing.T) {
	a := newParquetInitApp(t)
	path := filepath.Join(t.TempDir(), "export.parquet")
	require.NoError(t, a.Export(context.Background(), path))
	bars, err := parquetfile.ReadBars(path)
	require.NoError(t, err)
	assert.Equal(t, testBars, bars)
}
