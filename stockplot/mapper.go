// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candleview/stockval"
	"math"
)

const BaseBarWidth = 10.0

// BarWidth returns the horizontal space per bar in pixels.
func BarWidth(zoomLevel float64) float64 {
	return BaseBarWidth * zoomLevel
}

// PriceToY maps a price into the plot area, higher prices yield smaller y values.
// A degenerate price range maps to the vertical centre of the plot area.
func PriceToY(price, minPrice, maxPrice, plotHeight, plotBottom float64) float64 {
	priceRange := maxPrice - minPrice
	if math.Abs(priceRange) < stockval.NearZero || math.IsNaN(priceRange) {
		return plotBottom - plotHeight/2
	}
	return plotBottom - (price-minPrice)/priceRange*plotHeight
}

// IndexToX maps a bar index relative to the first visible bar to the left edge
// of its slot. Only the sub-bar remainder of the offset shifts the slots.
func IndexToX(i int, offsetX, barWidth, leftPadding float64) float64 {
	if barWidth <= 0 {
		return leftPadding
	}
	return leftPadding + float64(i)*barWidth - math.Mod(offsetX, barWidth)
}

func getCandleWidth(barWidth float64) (bodyWidth float64) {
	const minBodyWidth = 3
	const bodyMultiplier = 0.7
	return math.Max(minBodyWidth, barWidth*bodyMultiplier)
}

// Projection of a single frame, data space to screen space.
type projection struct {
	minPrice    float64
	maxPrice    float64
	plotHeight  float64
	plotBottom  float64
	offsetX     float64
	barWidth    float64
	leftPadding float64
}

// Left edge of the slot of visible bar i.
func (proj projection) getXpos(i int) float64 {
	return IndexToX(i, proj.offsetX, proj.barWidth, proj.leftPadding)
}

// Centre of the slot of visible bar i.
func (proj projection) getCenterXpos(i int) float64 {
	return proj.getXpos(i) + proj.barWidth/2
}

func (proj projection) getYpos(v float64) float64 {
	return PriceToY(v, proj.minPrice, proj.maxPrice, proj.plotHeight, proj.plotBottom)
}
