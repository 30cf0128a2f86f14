// Package localstats computes local (windowed) statistics over dense 2D grids:
// mean, variance, standard deviation and RMS contrast over every krows×kcols
// block of an image or any row-major matrix of samples.
//
// What is inside?
//
//	A pure-Go, allocation-light kernel with two interchangeable engines:
//		• Naive filter: rescans every window through an accumulator (the oracle)
//		• Separable moment engine: Σx and Σx² block sums in two linear passes,
//		  statistics reconstructed from the moments in O(rows·cols)
//
// Subpackages:
//
//	grid/  : index mapping, shape/window validation, interior Region, image adapters
//	accum/ : Average, Variance, StdDev, RMSContrast accumulators
//	filter/: Filter, FastFilter, BlockSum(s), Compute, Quantize, options
//	cmd/localstats: command-line harness (decode image, run, compare, time)
//
// Quick example:
//
//	q := make([]float64, rows*cols)
//	r, err := filter.FastFilter(accum.KindStdDev, pixels, q, rows, cols, 31, 31)
//
//	go get github.com/katalvlaran/localstats
package localstats
