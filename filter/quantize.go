// SPDX-License-Identifier: MIT

package filter

import (
	"math"

	"github.com/katalvlaran/localstats/grid"
)

// Quantize converts a computed statistic to the output element type.
// Integral U receives math.Round(y) (halves away from zero, so 1.5 -> 2),
// saturated to U's range: values beyond it (±Inf included) become U's
// minimum or maximum, and NaN becomes 0. Floating U receives y as-is.
func Quantize[U grid.Number](y float64) U {
	if !grid.IsIntegral[U]() {
		return U(y)
	}

	lo, hi := limits[U]()
	r := math.Round(y)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= float64(hi):
		return hi
	case r <= float64(lo):
		return lo
	}
	return U(r)
}

// limits returns the smallest and largest values of the integral type U.
func limits[U grid.Number]() (lo, hi U) {
	hi = 1
	for next := hi*2 + 1; next > hi; next = hi*2 + 1 {
		hi = next // stops where doubling wraps
	}
	if lo-1 < lo { // signed
		lo = -hi - 1
	}
	return lo, hi
}
