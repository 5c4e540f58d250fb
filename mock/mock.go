// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bytes"
	"candleview/config"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger writing JSON lines into the returned buffer.
func NewLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return zerolog.New(buf).With().Timestamp().Logger(), buf
}

func NewDataSourceConfig(source string) config.Config {
	c := NewTestConfig()
	appConfig, _ := c.Lock()
	appConfig.DataSource.Source = source
	appConfig.DataSource.RetrySeconds = 1
	_ = c.Unlock(appConfig, true)
	return c
}
