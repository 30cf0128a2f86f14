// SPDX-License-Identifier: MIT

package filter

import (
	"math"

	"github.com/katalvlaran/localstats/accum"
	"github.com/katalvlaran/localstats/grid"
)

// prepare runs the checks shared by both engines and returns the region of
// centers to write.
// Order: shape/window -> kind -> finite samples -> window fit.
func prepare[T grid.Number](op string, kind accum.Kind, p []T, nq, rows, cols, krows, kcols int, o Options) (grid.Region, error) {
	if err := grid.ValidatePair(len(p), nq, rows, cols, krows, kcols); err != nil {
		return grid.Region{}, filterErrorf(op, err)
	}
	if !kind.Valid() {
		return grid.Region{}, filterErrorf(op, accum.ErrUnknownKind)
	}
	if o.validateFinite && !grid.IsIntegral[T]() {
		for _, v := range p {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return grid.Region{}, filterErrorf(op, ErrNaNInf)
			}
		}
	}

	r := grid.Interior(rows, cols, krows, kcols)
	if r.Empty() && o.strictWindow {
		return r, filterErrorf(op, ErrWindowTooLarge)
	}

	return r, nil
}

// finish applies the variance clamp policy and quantizes y for storage.
func finish[U grid.Number](kind accum.Kind, y float64, o Options) U {
	if kind == accum.KindVariance && o.clampVariance && y < 0 {
		y = 0
	}
	return Quantize[U](y)
}
