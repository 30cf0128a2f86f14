// SPDX-License-Identifier: MIT
// Package: filter
//
// Purpose:
//   - The 1D sliding-sum pass (BlockSum) and the two-pass 2D block sum
//     (BlockSums) the fast engine is built from.
//
// Transposed writes:
//
//	Each 1D pass writes its sums at the transposed position, so the output of
//	the row pass is a cols×rows grid whose rows are the original columns. The
//	column pass is then the very same row routine applied to that grid, and
//	its transposed write restores the original orientation.
//
// Determinism & Performance:
//   - One add and one subtract per sample per pass: O(rows·cols) overall.
//   - Intermediates are exact accum.Sum totals; only the final block sums are
//     rounded to float64, so the grouping of the passes cannot change a bit.

package filter

import (
	"github.com/katalvlaran/localstats/accum"
	"github.com/katalvlaran/localstats/grid"
)

const (
	opBlockSum  = "BlockSum"
	opBlockSums = "BlockSums"
)

// slide moves a k-wide window along a line of n positions. fold(j, sign) adds
// (sign 1) or removes (sign -1) position j; store(c) sees every full window,
// c being its center, before the oldest position leaves.
func slide(n, k int, fold func(j, sign int), store func(c int)) {
	half := k / 2

	var j, start int
	for j = 0; j < n; j++ {
		fold(j, 1) // newest sample enters
		if j+1 < k {
			continue // window not yet full
		}
		start = j - k + 1
		store(start + half)
		fold(start, -1) // oldest sample leaves
	}
}

// BlockSum slides a 1×kcols window along row `row` of p (rows×cols) and writes
// the sum of x^exp over each full window into out, transposed: the window
// starting at column s lands at out[grid.Index(s+kcols/2, row, rows)].
// out is a cols×rows grid; positions whose window never filled are untouched.
// Each sum is exact before its single rounding to float64.
//
// Errors:
//   - grid.ErrBadShape / grid.ErrDimensionMismatch for p or out.
//   - grid.ErrOutOfRange for row outside [0, rows).
//   - grid.ErrBadWindow for kcols < 1, ErrBadExponent for exp ∉ {1, 2}.
//
// Complexity: Time O(cols), Space O(1).
func BlockSum[T grid.Number](p []T, rows, cols, row, kcols, exp int, out []float64) error {
	if err := grid.ValidatePair(len(p), len(out), rows, cols, 1, kcols); err != nil {
		return filterErrorf(opBlockSum, err)
	}
	if row < 0 || row >= rows {
		return filterErrorf(opBlockSum, grid.ErrOutOfRange)
	}
	if exp != 1 && exp != 2 {
		return filterErrorf(opBlockSum, ErrBadExponent)
	}

	blockSum(p, rows, cols, row, kcols, exp, func(idx int, run *accum.Sum) {
		out[idx] = run.Float64()
	})

	return nil
}

// blockSum is BlockSum without validation; store receives the transposed
// index and the exact running total of each full window.
func blockSum[T grid.Number](p []T, rows, cols, row, kcols, exp int, store func(idx int, run *accum.Sum)) {
	base := grid.Index(row, 0, cols)

	var run accum.Sum
	slide(cols, kcols,
		func(j, sign int) { accum.Fold(&run, p[base+j], exp, sign) },
		func(c int) { store(grid.Index(c, row, rows), &run) },
	)
}

// BlockSums returns the krows×kcols block sums of x^exp over p (rows×cols),
// each stored at its window center in a fresh rows×cols buffer.
//
// Implementation:
//   - Pass 1: the BlockSum slide over every row with window kcols and
//     exponent exp, into a cols×rows intermediate of exact totals.
//   - Pass 2: the same slide over every row of the intermediate (the
//     original columns) with window krows, merging totals and writing back
//     into rows×cols.
//
// Every block sum is exact until its one final rounding, so it equals the
// rounded total of a direct rescan of the block.
// Positions outside grid.Interior(rows, cols, krows, kcols) hold 0.
//
// Errors: as BlockSum.
// Complexity: Time O(rows·cols), Space O(2·rows·cols).
func BlockSums[T grid.Number](p []T, rows, cols, krows, kcols, exp int) ([]float64, error) {
	if err := grid.ValidateShape(len(p), rows, cols); err != nil {
		return nil, filterErrorf(opBlockSums, err)
	}
	if err := grid.ValidateWindow(krows, kcols); err != nil {
		return nil, filterErrorf(opBlockSums, err)
	}
	if exp != 1 && exp != 2 {
		return nil, filterErrorf(opBlockSums, ErrBadExponent)
	}

	return blockSums(p, rows, cols, krows, kcols, exp), nil
}

// blockSums is BlockSums without validation.
func blockSums[T grid.Number](p []T, rows, cols, krows, kcols, exp int) []float64 {
	tmp := make([]accum.Sum, cols*rows) // transposed row totals
	out := make([]float64, rows*cols)

	var i int
	for i = 0; i < rows; i++ {
		blockSum(p, rows, cols, i, kcols, exp, func(idx int, run *accum.Sum) {
			tmp[idx].Set(run)
		})
	}
	for i = 0; i < cols; i++ {
		base := grid.Index(i, 0, rows)
		col := i

		var run accum.Sum
		slide(rows, krows,
			func(j, sign int) { run.Merge(&tmp[base+j], sign) },
			func(c int) { out[grid.Index(c, col, cols)] = run.Float64() },
		)
	}

	return out
}
