// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/katalvlaran/localstats/accum"
	"github.com/katalvlaran/localstats/grid"
)

const (
	opFastFilter       = "FastFilter"
	opFastFilterSquare = "FastFilterSquare"
)

// FastFilter computes the same result as Filter through separable block
// moments.
//
// Implementation:
//   - Stage 1: validate exactly as Filter does.
//   - Stage 2: S1 = BlockSums(p, exp=1); for variance-type kinds also
//     S2 = BlockSums(p, exp=2).
//   - Stage 3: for every center in the interior region, reconstruct the
//     statistic from S1, S2 and N = krows*kcols:
//     average  = S1/N
//     variance = S2/N − (S1/N)²
//     stddev   = sqrt(max(variance, 0)), rms_contrast likewise.
//
// The reconstruction formulas are the ones the accumulators use, so identical
// moments give identical results.
//
// Errors: as Filter.
// Complexity: Time O(rows·cols), Space O(2·rows·cols) per moment.
func FastFilter[T, U grid.Number](kind accum.Kind, p []T, q []U, rows, cols, krows, kcols int, opts ...Option) (grid.Region, error) {
	return fastFilter(opFastFilter, kind, p, q, rows, cols, krows, kcols, gatherOptions(opts...))
}

// FastFilterSquare is FastFilter with a k×k window.
func FastFilterSquare[T, U grid.Number](kind accum.Kind, p []T, q []U, rows, cols, k int, opts ...Option) (grid.Region, error) {
	return fastFilter(opFastFilterSquare, kind, p, q, rows, cols, k, k, gatherOptions(opts...))
}

func fastFilter[T, U grid.Number](op string, kind accum.Kind, p []T, q []U, rows, cols, krows, kcols int, o Options) (grid.Region, error) {
	// Stage 1 (Validate)
	r, err := prepare(op, kind, p, len(q), rows, cols, krows, kcols, o)
	if err != nil || r.Empty() {
		return r, err
	}

	// Stage 2 (Moments)
	s1 := blockSums(p, rows, cols, krows, kcols, 1)
	var s2 []float64
	if kind.NeedsSquares() {
		s2 = blockSums(p, rows, cols, krows, kcols, 2)
	}

	// Stage 3 (Reconstruct)
	n := krows * kcols
	r.Each(func(i, j int) {
		idx := grid.Index(i, j, cols)
		var y float64
		switch kind {
		case accum.KindAverage:
			y = accum.Mean(s1[idx], n)
		case accum.KindVariance:
			y = accum.MomentVariance(s1[idx], s2[idx], n)
		default: // KindStdDev, KindRMSContrast
			y = accum.SafeSqrt(accum.MomentVariance(s1[idx], s2[idx], n))
		}
		q[idx] = finish[U](kind, y, o)
	})

	return r, nil
}
