// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candleview/stockval"
	"math"
)

const (
	PricePaddingRatio = 0.05
	MinPricePadding   = 0.01
)

// VisibleWindow is the slice of bars shown in a frame together with the
// padded price range used for vertical scaling.
type VisibleWindow struct {
	FirstIndex int
	Count      int
	MinPrice   float64
	MaxPrice   float64
}

func (w VisibleWindow) Empty() bool {
	return w.Count == 0
}

// Bars returns the visible part of bars.
func (w VisibleWindow) Bars(bars []stockval.Bar) []stockval.Bar {
	if w.Empty() || w.FirstIndex >= len(bars) {
		return nil
	}
	return bars[w.FirstIndex:min(w.FirstIndex+w.Count, len(bars))]
}

// VisiblePriceRange returns the lowest low and highest high of bars.
// Both are zero for an empty slice.
func VisiblePriceRange(bars []stockval.Bar) (minPrice, maxPrice float64) {
	if len(bars) == 0 {
		return 0, 0
	}
	minPrice = math.Inf(1)
	maxPrice = math.Inf(-1)
	for _, b := range bars {
		minPrice = math.Min(minPrice, b.Low)
		maxPrice = math.Max(maxPrice, b.High)
	}
	return
}

func computeVisibleWindow(bars []stockval.Bar, first, count int) VisibleWindow {
	w := VisibleWindow{FirstIndex: first, Count: count}
	visible := w.Bars(bars)
	if len(visible) == 0 {
		return VisibleWindow{FirstIndex: first}
	}
	w.Count = len(visible)
	minPrice, maxPrice := VisiblePriceRange(visible)
	padding := (maxPrice - minPrice) * PricePaddingRatio
	if maxPrice-minPrice < stockval.NearZero {
		padding = MinPricePadding
	}
	w.MinPrice = minPrice - padding
	w.MaxPrice = maxPrice + padding
	return w
}
