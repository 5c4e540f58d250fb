// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package parquetfile

import (
	"candleview/config"
	"candleview/stockapi"
	"candleview/stockval"
	"context"
	"fmt"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// Column layout of bar files, times are unix milliseconds.
type parquetBar struct {
	Timestamp int64    `parquet:"t"`
	Open      float64  `parquet:"o"`
	High      float64  `parquet:"h"`
	Low       float64  `parquet:"l"`
	Close     float64  `parquet:"c"`
	Volume    *float64 `parquet:"v,optional"`
}

type dataSource struct {
	config config.DataSourceConfig
	logger zerolog.Logger
}

// NewDataSource creates a source reading bars from local parquet files.
func NewDataSource(logger zerolog.Logger) stockapi.BarDataSource {
	return &dataSource{
		config: config.NewDataSourceConfig(),
		logger: logger.With().Str("source", string(GetSourceId())).Logger(),
	}
}

func GetSourceId() stockval.SourceId {
	return "parquetfile"
}

func (ds *dataSource) GetSourceId() stockval.SourceId {
	return GetSourceId()
}

func (ds *dataSource) ReadConfig(c config.Config) error {
	appConfig, err := c.Copy(false)
	if err != nil {
		return err
	}
	ds.config = appConfig.DataSource
	return nil
}

func ReadBars(path string) ([]stockval.Bar, error) {
	rows, err := parquet.ReadFile[parquetBar](path)
	if err != nil {
		return nil, fmt.Errorf("error reading parquet file %s: %w", path, err)
	}
	bars := make([]stockval.Bar, len(rows))
	for i, r := range rows {
		bars[i] = stockval.Bar{
			Time:  r.Timestamp,
			Open:  r.Open,
			High:  r.High,
			Low:   r.Low,
			Close: r.Close,
		}
		if r.Volume != nil {
			bars[i].Volume = *r.Volume
			bars[i].HasVolume = true
		}
	}
	return bars, nil
}

// WriteBars stores bars in a parquet file which can be read using ReadBars.
func WriteBars(path string, bars []stockval.Bar) error {
	rows := make([]parquetBar, len(bars))
	for i, b := range bars {
		rows[i] = parquetBar{
			Timestamp: b.Time,
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
		}
		if b.HasVolume {
			v := b.Volume
			rows[i].Volume = &v
		}
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("error writing parquet file %s: %w", path, err)
	}
	return nil
}

func (ds *dataSource) loadBars(ctx context.Context, source string) ([]stockval.Bar, error) {
	if source == "" {
		source = ds.config.Source
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadBars(source)
}

func (ds *dataSource) LoadBars(ctx context.Context, source string) []stockval.Bar {
	return stockapi.LoadBars(ctx, source, ds.loadBars, ds.logger)
}

func (ds *dataSource) QueryBars(ctx context.Context, request <-chan stockapi.BarsRequest, response chan<- stockapi.BarsResponse) {
	stockapi.ServeBars(ctx, request, response, ds.loadBars, ds.logger)
}
