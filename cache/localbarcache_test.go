// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cache

import (
	"candleview/stockval"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) BarCache {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := NewLocalBarCache("test", time.Hour)
	require.NoError(t, err)
	return c
}

func TestGetBarsIsCached(t *testing.T) {
	c := newTestCache(t)
	var requests int
	req := func(ctx context.Context) ([]stockval.Bar, error) {
		requests++
		return []stockval.Bar{{Time: 60000, Open: 1, High: 2, Low: 0.5, Close: 1.5}}, nil
	}
	bars, err := c.GetBars(context.Background(), "https://example.com/bars?a=1", req)
	require.NoError(t, err)
	assert.Len(t, bars, 1)
	bars, err = c.GetBars(context.Background(), "https://example.com/bars?a=1", req)
	require.NoError(t, err)
	assert.Len(t, bars, 1)
	assert.Equal(t, 1.5, bars[0].Close)
	assert.Equal(t, 1, requests)

	_, err = c.GetBars(context.Background(), "https://example.com/bars?a=2", req)
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
}

func TestGetBarsError(t *testing.T) {
	c := newTestCache(t)
	bars, err := c.GetBars(context.Background(), "key", func(ctx context.Context) ([]stockval.Bar, error) {
		return nil, errors.New("unavailable")
	})
	assert.Error(t, err)
	assert.Empty(t, bars)
}

func TestEmptyResultIsNotCached(t *testing.T) {
	c := newTestCache(t)
	var requests int
	req := func(ctx context.Context) ([]stockval.Bar, error) {
		requests++
		return []stockval.Bar{}, nil
	}
	_, _ = c.GetBars(context.Background(), "key", req)
	_, _ = c.GetBars(context.Background(), "key", req)
	assert.Equal(t, 2, requests)
}

func TestCacheKey(t *testing.T) {
	assert.Len(t, cacheKey("https://example.com/?x=1"), 64)
	assert.NotEqual(t, cacheKey("a"), cacheKey("b"))
}
