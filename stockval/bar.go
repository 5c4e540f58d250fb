// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"math"
	"sort"
	"time"
)

// Bar is a single OHLC price bar. Time is in milliseconds since the epoch.
type Bar struct {
	Time      int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64 `json:",omitempty"`
	HasVolume bool    `json:",omitempty"`
}

func (b Bar) Timestamp() time.Time {
	return time.UnixMilli(b.Time)
}

// IsValid reports whether low <= min(open, close) <= max(open, close) <= high,
// all prices are finite and the volume is not negative.
func (b Bar) IsValid() bool {
	for _, v := range [...]float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if b.HasVolume && b.Volume < 0 {
		return false
	}
	return b.Low <= math.Min(b.Open, b.Close) && math.Max(b.Open, b.Close) <= b.High
}

// For sorting
type BarList []Bar

func (x BarList) Len() int           { return len(x) }
func (x BarList) Less(i, j int) bool { return x[i].Time < x[j].Time }
func (x BarList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// Sanitize drops invalid bars and sorts the remaining ones by time.
// The number of dropped bars is returned. The receiver is modified in place.
func (x BarList) Sanitize() (BarList, int) {
	valid := x[:0]
	for _, b := range x {
		if b.IsValid() {
			valid = append(valid, b)
		}
	}
	dropped := len(x) - len(valid)
	if !sort.IsSorted(valid) {
		sort.Stable(valid)
	}
	return valid, dropped
}
