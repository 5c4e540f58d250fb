// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"candleview/cache"
	"candleview/stockval"
	"context"
	"sync/atomic"
)

// TestBarCache does not cache anything, it counts the requests passed through.
type TestBarCache struct {
	Requests atomic.Int32
}

func NewBarCache() *TestBarCache {
	return &TestBarCache{}
}

func (c *TestBarCache) GetBars(ctx context.Context, key string, req cache.BarRequest) ([]stockval.Bar, error) {
	c.Requests.Add(1)
	return req(ctx)
}

var _ cache.BarCache = (*TestBarCache)(nil)
