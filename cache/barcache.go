// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cache

import (
	"candleview/stockval"
	"context"
)

type BarRequest func(ctx context.Context) ([]stockval.Bar, error)

type BarCache interface {
	// GetBars returns the bars stored for key or calls req and stores its result.
	GetBars(ctx context.Context, key string, req BarRequest) ([]stockval.Bar, error)
}
