// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"math"

	"github.com/ericlagergren/decimal"
)

// Price differences below NearZero are treated as zero.
const NearZero = 0.000001

// Convert decimal to float, nil or out of range values yield NaN.
func ConvertDecimalToFloat(d *decimal.Big) float64 {
	if d == nil {
		return math.NaN()
	}
	f, ok := d.Float64()
	if !ok {
		return math.NaN()
	}
	return f
}

func IsGreenCandle(o, c float64) bool {
	// Equal open and close is considered to be green.
	return c >= o
}

func ClampFloat64(v, minValue, maxValue float64) float64 {
	return math.Max(minValue, math.Min(v, maxValue))
}
