// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlotThemeScaled(t *testing.T) {
	th := NewDarkPlotTheme()
	scaled := th.Scaled(2)
	assert.Equal(t, float32(100), scaled.PaddingLeft)
	assert.Equal(t, float32(40), scaled.PaddingTop)
	assert.Equal(t, float32(100), scaled.PaddingBottom)
	assert.Equal(t, float32(10), scaled.TextMargin)
	assert.Equal(t, float32(2), scaled.WickLineWidth)
	// Font sizes are scaled by the text shaper.
	assert.Equal(t, th.FontSize, scaled.FontSize)
	assert.Equal(t, th.CandleUpColor, scaled.CandleUpColor)
	// The original is not modified.
	assert.Equal(t, float32(50), th.PaddingLeft)

	assert.Equal(t, *th, *th.Scaled(0))
}
