// SPDX-License-Identifier: MIT

package filter_test

import (
	"testing"

	"github.com/katalvlaran/localstats/accum"
	"github.com/katalvlaran/localstats/filter"
	"github.com/katalvlaran/localstats/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockSum_SingleRow(t *testing.T) {
	t.Parallel()

	p := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		k    int
		exp  int
		want []float64
	}{
		{"k=3 sums", 3, 1, []float64{0, 6, 9, 12, 0}},
		{"k=3 squares", 3, 2, []float64{0, 14, 29, 50, 0}},
		{"k=2 centers shift right", 2, 1, []float64{0, 3, 5, 7, 9}},
		{"k=1 identity", 1, 1, []float64{1, 2, 3, 4, 5}},
		{"k=5 single window", 5, 1, []float64{0, 0, 15, 0, 0}},
		{"k=6 never fills", 6, 1, []float64{0, 0, 0, 0, 0}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := make([]float64, len(p)) // 5×1, the transpose of 1×5
			require.NoError(t, filter.BlockSum(p, 1, 5, 0, tc.k, tc.exp, out))
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestBlockSum_WritesTransposed(t *testing.T) {
	t.Parallel()

	// 2×4 input; row 1 sums land in column 1 of the 4×2 output.
	p := []float64{
		1, 1, 1, 1,
		1, 2, 3, 4,
	}
	out := make([]float64, 8)
	require.NoError(t, filter.BlockSum(p, 2, 4, 1, 3, 1, out))

	want := []float64{
		0, 0,
		0, 6,
		0, 9,
		0, 0,
	}
	assert.Equal(t, want, out)
}

func TestBlockSum_Errors(t *testing.T) {
	t.Parallel()

	p := make([]float64, 6)
	out := make([]float64, 6)

	require.ErrorIs(t, filter.BlockSum(p, 2, 3, 2, 1, 1, out), grid.ErrOutOfRange)
	require.ErrorIs(t, filter.BlockSum(p, 2, 3, -1, 1, 1, out), grid.ErrOutOfRange)
	require.ErrorIs(t, filter.BlockSum(p, 2, 3, 0, 1, 3, out), filter.ErrBadExponent)
	require.ErrorIs(t, filter.BlockSum(p, 2, 3, 0, 0, 1, out), grid.ErrBadWindow)
	require.ErrorIs(t, filter.BlockSum(p[:5], 2, 3, 0, 1, 1, out), grid.ErrDimensionMismatch)
	require.ErrorIs(t, filter.BlockSum(p, 2, 3, 0, 1, 1, out[:4]), grid.ErrDimensionMismatch)
}

func TestBlockSums_TwoPass(t *testing.T) {
	t.Parallel()

	// 4×5 grid of ones: every interior 3×3 block sums to 9.
	ones := filled(20, uint8(1))
	s, err := filter.BlockSums(ones, 4, 5, 3, 3, 1)
	require.NoError(t, err)

	r := grid.Interior(4, 5, 3, 3)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			if r.Contains(i, j) {
				assert.Equal(t, 9.0, s[grid.Index(i, j, 5)], "(%d,%d)", i, j)
			} else {
				assert.Equal(t, 0.0, s[grid.Index(i, j, 5)], "(%d,%d)", i, j)
			}
		}
	}

	// Squares of a known grid with a 2×3 window.
	p := []int16{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	s2, err := filter.BlockSums(p, 3, 3, 2, 3, 2)
	require.NoError(t, err)
	// windows start at rows 0 and 1; centers at rows 1 and 2, column 1.
	assert.Equal(t, []float64{
		0, 0, 0,
		0, 1 + 4 + 9 + 16 + 25 + 36, 0,
		0, 16 + 25 + 36 + 49 + 64 + 81, 0,
	}, s2)
}

// BlockSums must agree with a direct rescan of each window.
func TestBlockSums_MatchesDirectSums(t *testing.T) {
	t.Parallel()

	const rows, cols = 19, 23
	p := randomGrid[int32](7, rows, cols, -1000, 1000)

	for _, w := range [][2]int{{1, 1}, {3, 5}, {4, 2}, {7, 7}, {19, 1}, {1, 23}} {
		kr, kc := w[0], w[1]
		for _, exp := range []int{1, 2} {
			s, err := filter.BlockSums(p, rows, cols, kr, kc, exp)
			require.NoError(t, err)

			grid.Interior(rows, cols, kr, kc).Each(func(ci, cj int) {
				i, j := ci-kr/2, cj-kc/2
				var want float64
				for a := 0; a < kr; a++ {
					for b := 0; b < kc; b++ {
						v := float64(p[grid.Index(i+a, j+b, cols)])
						if exp == 2 {
							v *= v
						}
						want += v
					}
				}
				require.Equal(t, want, s[grid.Index(ci, cj, cols)], "window %dx%d exp %d at (%d,%d)", kr, kc, exp, ci, cj)
			})
		}
	}
}

// Floating block sums are the exact window totals rounded once, whatever the
// grouping of the two passes.
func TestBlockSums_FloatingMatchesExactRescan(t *testing.T) {
	t.Parallel()

	const rows, cols = 11, 13
	p := normalGrid(5, rows, cols)
	p[grid.Index(4, 4, cols)] = 1e17 // swamps its neighbours in a float64 running sum

	for _, w := range [][2]int{{3, 3}, {5, 2}, {11, 13}} {
		kr, kc := w[0], w[1]
		for _, exp := range []int{1, 2} {
			s, err := filter.BlockSums(p, rows, cols, kr, kc, exp)
			require.NoError(t, err)

			grid.Interior(rows, cols, kr, kc).Each(func(ci, cj int) {
				i, j := ci-kr/2, cj-kc/2
				var want accum.Sum
				for a := 0; a < kr; a++ {
					for b := 0; b < kc; b++ {
						accum.Fold(&want, p[grid.Index(i+a, j+b, cols)], exp, 1)
					}
				}
				require.Equal(t, want.Float64(), s[grid.Index(ci, cj, cols)], "window %dx%d exp %d at (%d,%d)", kr, kc, exp, ci, cj)
			})
		}
	}
}

func TestBlockSums_Errors(t *testing.T) {
	t.Parallel()

	p := make([]float32, 6)
	_, err := filter.BlockSums(p, 2, 3, 1, 1, 0)
	require.ErrorIs(t, err, filter.ErrBadExponent)
	_, err = filter.BlockSums(p, 3, 3, 1, 1, 1)
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)
	_, err = filter.BlockSums(p, 2, 3, 1, 0, 1)
	require.ErrorIs(t, err, grid.ErrBadWindow)
	_, err = filter.BlockSums(p, 0, 3, 1, 1, 1)
	require.ErrorIs(t, err, grid.ErrBadShape)
}
