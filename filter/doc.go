// Package filter computes windowed statistics (mean, variance, standard
// deviation, RMS contrast) over krows×kcols blocks of a row-major grid.
//
// Two engines produce the same result:
//
//   - Filter (naive): for every window that fits, feed all krows*kcols samples
//     into an accum.Accumulator and store its result at the window center.
//     O(rows·cols·krows·kcols). Used as the correctness oracle.
//
//   - FastFilter (separable moments): block sums Σx and Σx² are built in two
//     linear passes (a 1D sliding sum along every row written transposed,
//     then the same pass along every column of the intermediate written
//     transposed back), and the statistic is reconstructed from the moments.
//     O(rows·cols) regardless of the window size.
//
// Variance is not separable on its own: applying a variance reducer along the
// rows and then along the columns does not give the 2D variance. The fast
// engine therefore always separates the raw moments and combines them last.
//
// Output contract (both engines):
//
//	Only centers whose window lies entirely inside the grid are written; the
//	returned grid.Region names exactly those positions. Everything else in q
//	keeps whatever the caller put there (zero for a fresh slice).
//
// Integral output types receive math.Round(y) (halves away from zero),
// saturated to the type's range; floating output types receive y unchanged.
// See Quantize.
//
// Exactness:
//
//	Both engines total Σx and Σx² exactly (accum.Sum) and round each moment
//	to float64 once, then reconstruct through the same accum functions. The
//	two engines therefore agree bit for bit for every sample type, integral
//	or floating, including windows that hold NaN or ±Inf.
//
// Usage:
//
//	q := make([]float64, rows*cols)
//	r, err := filter.FastFilter(accum.KindStdDev, pixels, q, rows, cols, 31, 31)
//	if err != nil { ... }
//	r.Each(func(i, j int) { use(q[grid.Index(i, j, cols)]) })
package filter
