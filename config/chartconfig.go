// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"time"
)

type ChartConfig struct {
	// IANA time zone of the date labels, the local time zone is used if empty.
	TimeZone        string `yaml:",omitempty"`
	HideAxesBacking bool   `yaml:",omitempty"`
}

func (c *ChartConfig) Location() (*time.Location, error) {
	if len(c.TimeZone) == 0 {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local, fmt.Errorf("invalid chart time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
