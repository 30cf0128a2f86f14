// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/katalvlaran/localstats/accum"
	"github.com/katalvlaran/localstats/grid"
)

const (
	opFilter       = "Filter"
	opFilterSquare = "FilterSquare"
)

// Filter computes kind over every krows×kcols window of p (rows×cols) by
// direct evaluation and stores each result at the window center in q.
//
// Implementation:
//   - Stage 1: validate shapes, window and kind; resolve the interior region.
//   - Stage 2: for each top-left corner (i, j) with i <= rows-krows and
//     j <= cols-kcols, reset one accumulator and feed it the whole window.
//   - Stage 3: store the quantized result at grid.Center(i, j, ...).
//
// Positions outside the returned region are not written.
//
// Errors:
//   - grid.ErrBadShape, grid.ErrDimensionMismatch, grid.ErrBadWindow.
//   - accum.ErrUnknownKind.
//   - ErrWindowTooLarge (WithStrictWindow), ErrNaNInf (WithValidateFinite).
//
// Complexity: Time O(rows·cols·krows·kcols), Space O(1).
func Filter[T, U grid.Number](kind accum.Kind, p []T, q []U, rows, cols, krows, kcols int, opts ...Option) (grid.Region, error) {
	return filter(opFilter, kind, p, q, rows, cols, krows, kcols, gatherOptions(opts...))
}

// FilterSquare is Filter with a k×k window.
func FilterSquare[T, U grid.Number](kind accum.Kind, p []T, q []U, rows, cols, k int, opts ...Option) (grid.Region, error) {
	return filter(opFilterSquare, kind, p, q, rows, cols, k, k, gatherOptions(opts...))
}

func filter[T, U grid.Number](op string, kind accum.Kind, p []T, q []U, rows, cols, krows, kcols int, o Options) (grid.Region, error) {
	// Stage 1 (Validate)
	r, err := prepare(op, kind, p, len(q), rows, cols, krows, kcols, o)
	if err != nil || r.Empty() {
		return r, err
	}

	acc, err := accum.New[T](kind)
	if err != nil {
		return grid.Region{}, filterErrorf(op, err)
	}

	// Stage 2 (Execute): one accumulator, reset per window.
	var i, j, i2, j2 int
	var y float64
	for i = 0; i+krows <= rows; i++ {
		for j = 0; j+kcols <= cols; j++ {
			acc.Reset()
			for i2 = 0; i2 < krows; i2++ {
				base := grid.Index(i+i2, j, cols)
				for j2 = 0; j2 < kcols; j2++ {
					acc.Update(p[base+j2])
				}
			}

			// Stage 3 (Store)
			if y, err = acc.Result(); err != nil {
				return grid.Region{}, filterErrorf(op, err)
			}
			q[grid.Center(i, j, cols, krows, kcols)] = finish[U](kind, y, o)
		}
	}

	return r, nil
}
