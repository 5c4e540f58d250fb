// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables overriding the configuration file. They are not persisted.
const (
	EnvSource     = "CANDLEVIEW_SOURCE"
	EnvLightTheme = "CANDLEVIEW_LIGHT_THEME"
)

func (a *AppConfig) ApplyEnvironment() error {
	if source, ok := os.LookupEnv(EnvSource); ok && len(source) > 0 {
		a.DataSource.Source = source
	}
	if lightTheme, ok := os.LookupEnv(EnvLightTheme); ok && len(lightTheme) > 0 {
		v, err := strconv.ParseBool(lightTheme)
		if err != nil {
			return fmt.Errorf("invalid value of %s: %w", EnvLightTheme, err)
		}
		a.LightTheme = v
	}
	return nil
}

type envConfig struct {
	Config
}

// WithEnvironment returns a configuration whose copies include the environment
// overrides. Lock and Unlock access the plain configuration.
func WithEnvironment(c Config) Config {
	return &envConfig{Config: c}
}

func (e *envConfig) Copy(forceReading bool) (AppConfig, error) {
	appConfig, err := e.Config.Copy(forceReading)
	if err != nil {
		return appConfig, err
	}
	err = appConfig.ApplyEnvironment()
	return appConfig, err
}
