// SPDX-License-Identifier: MIT
// Package filter_test contains test helpers
//
// Purpose:
//   • Deterministic grid generators for every element type.
//   • Comparison helpers restricted to the interior region.

package filter_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/localstats/accum"
	"github.com/katalvlaran/localstats/filter"
	"github.com/katalvlaran/localstats/grid"
	"github.com/stretchr/testify/require"
)

// sentinel marks output positions that must stay untouched.
const sentinel = -7

// sentinelOf converts sentinel to U (wrapping for unsigned types).
func sentinelOf[U grid.Number]() U {
	s := sentinel
	return U(s)
}

// randomGrid fills rows*cols samples drawn uniformly from [lo, hi] and
// converted to T. The seed keeps every run identical.
func randomGrid[T grid.Number](seed int64, rows, cols, lo, hi int) []T {
	rng := rand.New(rand.NewSource(seed))
	p := make([]T, rows*cols)
	for i := range p {
		p[i] = T(lo + rng.Intn(hi-lo+1))
	}
	return p
}

// bitsGrid fills rows*cols samples with random 64-bit patterns truncated to T,
// covering the whole range of any integral T.
func bitsGrid[T grid.Number](seed int64, rows, cols int) []T {
	rng := rand.New(rand.NewSource(seed))
	p := make([]T, rows*cols)
	for i := range p {
		p[i] = T(rng.Uint64())
	}
	return p
}

// normalGrid fills rows*cols standard-normal samples.
func normalGrid(seed int64, rows, cols int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	p := make([]float64, rows*cols)
	for i := range p {
		p[i] = rng.NormFloat64()
	}
	return p
}

// filled returns n copies of v.
func filled[T grid.Number](n int, v T) []T {
	p := make([]T, n)
	for i := range p {
		p[i] = v
	}
	return p
}

// bothEngines runs Filter and FastFilter for kind and returns their outputs.
// Both outputs start filled with sentinel; both regions must agree.
func bothEngines[T, U grid.Number](t *testing.T, kind accum.Kind, p []T, rows, cols, krows, kcols int, opts ...filter.Option) (slow, fast []U, r grid.Region) {
	t.Helper()

	slow = filled(rows*cols, sentinelOf[U]())
	fast = filled(rows*cols, sentinelOf[U]())

	rs, err := filter.Filter(kind, p, slow, rows, cols, krows, kcols, opts...)
	require.NoError(t, err)
	rf, err := filter.FastFilter(kind, p, fast, rows, cols, krows, kcols, opts...)
	require.NoError(t, err)
	require.Equal(t, rs, rf, "engines disagree on the interior region")

	return slow, fast, rs
}

// requireBorderUntouched fails if any position outside r lost the sentinel.
func requireBorderUntouched[U grid.Number](t *testing.T, q []U, rows, cols int, r grid.Region) {
	t.Helper()

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if r.Contains(i, j) {
				continue
			}
			require.Equalf(t, sentinelOf[U](), q[grid.Index(i, j, cols)], "border (%d,%d) was written", i, j)
		}
	}
}
