// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cache

import (
	"candleview/config"
	"candleview/stockval"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/lotodore/localcache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type localBarCache struct {
	source   stockval.SourceId
	data     *localcache.Cache
	maxAge   time.Duration
	initLock sync.Mutex
	logger   zerolog.Logger
}

func NewLocalBarCache(source stockval.SourceId, maxAge time.Duration) (BarCache, error) {
	c := localBarCache{
		source: source,
		maxAge: maxAge,
		logger: log.With().Str("component", "cache").Str("source", string(source)).Logger(),
	}
	var err error
	c.data, err = localcache.New(filepath.Join(config.AppName, string(source)))
	if err != nil {
		return nil, fmt.Errorf("error initializing bar cache: %w", err)
	}
	return &c, nil
}

// Source strings are URLs, which cannot be used as file names.
func cacheKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (c *localBarCache) GetBars(ctx context.Context, key string, req BarRequest) ([]stockval.Bar, error) {
	fileKey := cacheKey(key)
	err := c.data.PurgeKey(fileKey, c.maxAge)
	if err != nil {
		c.logger.Warn().Err(err).Msg("error purging cache, bar data may be outdated")
	}
	bars := c.readBarsFromCache(fileKey)
	if bars != nil {
		c.logger.Debug().Int("bars", len(bars)).Msg("using cached bars")
		return bars, nil
	}
	return c.initBarCache(ctx, fileKey, req)
}

func (c *localBarCache) readBarsFromCache(fileKey string) []stockval.Bar {
	rawBars, err := c.data.ReadFile(fileKey)
	if err == nil {
		var bars []stockval.Bar
		err := json.Unmarshal(rawBars, &bars)
		if err == nil {
			return bars
		}
		c.logger.Warn().Msg("bar cache contains invalid data")
		err = c.data.Remove(fileKey)
		if err != nil {
			c.logger.Warn().Err(err).Msg("error deleting cache, bar data may be invalid")
		}
	}
	return nil
}

func (c *localBarCache) initBarCache(ctx context.Context, fileKey string, req BarRequest) ([]stockval.Bar, error) {
	c.initLock.Lock()
	defer c.initLock.Unlock()
	// retry reading cache within lock, to avoid requesting the data twice.
	cachedBars := c.readBarsFromCache(fileKey)
	if cachedBars != nil {
		return cachedBars, nil
	}
	c.logger.Info().Msg("requesting bars...")
	bars, err := req(ctx)
	if err != nil {
		return nil, err
	}
	// Empty results are not cached, the source may be temporarily unavailable.
	if len(bars) == 0 {
		return bars, nil
	}
	barsText, err := json.Marshal(&bars)
	if err != nil {
		return nil, err
	}
	err = c.data.WriteFile(fileKey, barsText)
	if err != nil {
		c.logger.Warn().Err(err).Msg("error writing bar cache")
	}
	return bars, nil
}
