// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"github.com/barkimedes/go-deepcopy"
)

type AppConfig struct {
	LightTheme   bool `yaml:",omitempty"`
	DataSource   DataSourceConfig
	WindowConfig WindowConfig
	ChartConfig  ChartConfig
}

type DataSourceConfig struct {
	// URL of the chunked bar API or path of a local parquet bar file.
	Source             string `yaml:",omitempty"`
	TimeoutSeconds     int    `yaml:",omitempty"`
	RateLimitPerSecond int    `yaml:",omitempty"`
	// Maximum time spent retrying a failed request.
	RetrySeconds int  `yaml:",omitempty"`
	CacheHours   int  `yaml:",omitempty"`
	DisableCache bool `yaml:",omitempty"`
}

const DefaultSource = "https://beta.forextester.com/data/api/Metadata/bars/chunked?Broker=Advanced&Symbol=USDJPY&Timeframe=1&Start=57674&End=59113&UseMessagePack=false"

var defaultDataSourceConfig = NewDataSourceConfig()

func NewAppConfig() AppConfig {
	return AppConfig{
		DataSource:   NewDataSourceConfig(),
		WindowConfig: NewWindowConfig(),
	}
}

func NewDataSourceConfig() DataSourceConfig {
	return DataSourceConfig{
		Source:             DefaultSource,
		TimeoutSeconds:     10,
		RateLimitPerSecond: 5,
		RetrySeconds:       30,
		CacheHours:         12,
	}
}

func (a *AppConfig) deepCopy() AppConfig {
	c, err := deepcopy.Anything(a)
	if err != nil {
		panic(err)
	}
	return *c.(*AppConfig)
}

func (a *AppConfig) Sanitize() {
	a.WindowConfig.sanitize()
	a.RestoreDefaults()
}

// We do not want to store certain default values in the configuration file,
// in order to avoid having to patch them.
func (a *AppConfig) RemoveDefaults() {
	c := &a.DataSource
	def := defaultDataSourceConfig
	if c.Source == def.Source {
		c.Source = ""
	}
	if c.TimeoutSeconds == def.TimeoutSeconds {
		c.TimeoutSeconds = 0
	}
	if c.RateLimitPerSecond == def.RateLimitPerSecond {
		c.RateLimitPerSecond = 0
	}
	if c.RetrySeconds == def.RetrySeconds {
		c.RetrySeconds = 0
	}
	if c.CacheHours == def.CacheHours {
		c.CacheHours = 0
	}
}

// Restore certain default values which are not stored in the configuration file.
func (a *AppConfig) RestoreDefaults() {
	c := &a.DataSource
	def := defaultDataSourceConfig
	if len(c.Source) == 0 {
		c.Source = def.Source
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.RateLimitPerSecond <= 0 {
		c.RateLimitPerSecond = def.RateLimitPerSecond
	}
	if c.RetrySeconds <= 0 {
		c.RetrySeconds = def.RetrySeconds
	}
	if c.CacheHours <= 0 {
		c.CacheHours = def.CacheHours
	}
}
