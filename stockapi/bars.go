// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"candleview/stockval"
	"context"

	"github.com/rs/zerolog"
)

// BarLoadFunc loads and decodes the bars of a source.
type BarLoadFunc func(ctx context.Context, source string) ([]stockval.Bar, error)

// SanitizeBars drops invalid bars and sorts the remaining ones by time.
func SanitizeBars(bars []stockval.Bar, logger zerolog.Logger) []stockval.Bar {
	valid, dropped := stockval.BarList(bars).Sanitize()
	if dropped > 0 {
		logger.Warn().Int("dropped", dropped).Msg("ignoring invalid bars")
	}
	if valid == nil {
		return []stockval.Bar{}
	}
	return valid
}

// LoadBars runs load and substitutes an empty sequence on failure.
func LoadBars(ctx context.Context, source string, load BarLoadFunc, logger zerolog.Logger) []stockval.Bar {
	resp := QueryBars(ctx, BarsRequest{Source: source}, load, logger)
	return resp.Bars
}

func QueryBars(ctx context.Context, req BarsRequest, load BarLoadFunc, logger zerolog.Logger) BarsResponse {
	bars, err := load(ctx, req.Source)
	if err != nil {
		logger.Error().Err(err).Str("source", req.Source).Msg("loading bars failed")
		return BarsResponse{BarsRequest: req, Error: err, Bars: []stockval.Bar{}}
	}
	bars = SanitizeBars(bars, logger)
	logger.Info().Str("source", req.Source).Int("bars", len(bars)).Msg("bars loaded")
	return BarsResponse{BarsRequest: req, Bars: bars}
}

// ServeBars implements BarDataSource.QueryBars on top of load.
func ServeBars(ctx context.Context, request <-chan BarsRequest, response chan<- BarsResponse,
	load BarLoadFunc, logger zerolog.Logger) {
	defer close(response)

	for req := range request {
		response <- QueryBars(ctx, req, load, logger)
	}
	logger.Debug().Msg("QueryBars terminating")
}
