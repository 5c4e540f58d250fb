// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"candleview/config"
	"candleview/stockval"
	"context"
)

type BarsRequest struct {
	RequestId string
	// URL or file path, depending on the data source.
	Source string
}

type BarsResponse struct {
	BarsRequest
	Error error
	// Sorted by time, never nil. Empty if Error is set.
	Bars []stockval.Bar
}

type BarDataSource interface {
	GetSourceId() stockval.SourceId
	ReadConfig(c config.Config) error
	// LoadBars returns an empty slice on any transport or parse failure.
	LoadBars(ctx context.Context, source string) []stockval.Bar
	// QueryBars answers requests until the request channel is closed, then closes the response channel.
	QueryBars(ctx context.Context, request <-chan BarsRequest, response chan<- BarsResponse)
}
