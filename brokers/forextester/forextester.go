// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package forextester

import (
	"candleview/cache"
	"candleview/config"
	"candleview/stockapi"
	"candleview/stockval"
	"candleview/webclient"
	"context"
	"fmt"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/rs/zerolog"
)

// Prices are unmarshalled into decimal.Big, the JSON numbers of the API are
// not always exactly representable as float64.
type dataSource struct {
	client *webclient.Client
	cache  cache.BarCache
	config config.DataSourceConfig
	logger zerolog.Logger
}

type chunkBar struct {
	Time       int64        `json:"Time"`
	Open       *decimal.Big `json:"Open"`
	High       *decimal.Big `json:"High"`
	Low        *decimal.Big `json:"Low"`
	Close      *decimal.Big `json:"Close"`
	TickVolume *decimal.Big `json:"TickVolume,omitempty"`
}

type chunk struct {
	// Seconds since the unix epoch, bar times are relative to it.
	ChunkStart int64      `json:"ChunkStart"`
	Bars       []chunkBar `json:"Bars"`
}

// NewDataSource creates a source for the chunked bar API. The cache is optional.
func NewDataSource(c cache.BarCache, logger zerolog.Logger) stockapi.BarDataSource {
	ds := &dataSource{
		cache:  c,
		config: config.NewDataSourceConfig(),
		logger: logger.With().Str("source", string(GetSourceId())).Logger(),
	}
	ds.client = ds.newClient()
	return ds
}

func GetSourceId() stockval.SourceId {
	return "forextester"
}

func (ds *dataSource) GetSourceId() stockval.SourceId {
	return GetSourceId()
}

func (ds *dataSource) newClient() *webclient.Client {
	return webclient.NewClient(
		time.Second*time.Duration(ds.config.TimeoutSeconds),
		ds.config.RateLimitPerSecond,
		time.Second*time.Duration(ds.config.RetrySeconds),
		ds.logger,
	)
}

func (ds *dataSource) ReadConfig(c config.Config) error {
	appConfig, err := c.Copy(false)
	if err != nil {
		return err
	}
	ds.config = appConfig.DataSource
	ds.client = ds.newClient()
	return nil
}

func convertChunks(chunks []chunk) []stockval.Bar {
	var bars []stockval.Bar
	for _, c := range chunks {
		for _, b := range c.Bars {
			bar := stockval.Bar{
				Time:  (c.ChunkStart + b.Time) * 1000,
				Open:  stockval.ConvertDecimalToFloat(b.Open),
				High:  stockval.ConvertDecimalToFloat(b.High),
				Low:   stockval.ConvertDecimalToFloat(b.Low),
				Close: stockval.ConvertDecimalToFloat(b.Close),
			}
			if b.TickVolume != nil {
				bar.Volume = stockval.ConvertDecimalToFloat(b.TickVolume)
				bar.HasVolume = true
			}
			bars = append(bars, bar)
		}
	}
	return bars
}

func (ds *dataSource) fetchBars(ctx context.Context, source string) ([]stockval.Bar, error) {
	resp, err := ds.client.Get(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("error fetching bars: %w", err)
	}
	defer resp.Body.Close()
	var chunks []chunk
	if err = webclient.ParseJsonResponse(resp, &chunks); err != nil {
		return nil, err
	}
	return convertChunks(chunks), nil
}

func (ds *dataSource) loadBars(ctx context.Context, source string) ([]stockval.Bar, error) {
	if source == "" {
		source = ds.config.Source
	}
	if ds.cache == nil || ds.config.DisableCache {
		return ds.fetchBars(ctx, source)
	}
	return ds.cache.GetBars(ctx, source, func(ctx context.Context) ([]stockval.Bar, error) {
		return ds.fetchBars(ctx, source)
	})
}

func (ds *dataSource) LoadBars(ctx context.Context, source string) []stockval.Bar {
	return stockapi.LoadBars(ctx, source, ds.loadBars, ds.logger)
}

func (ds *dataSource) QueryBars(ctx context.Context, request <-chan stockapi.BarsRequest, response chan<- stockapi.BarsResponse) {
	stockapi.ServeBars(ctx, request, response, ds.loadBars, ds.logger)
}
