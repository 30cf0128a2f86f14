// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Describe the interior of a grid: the output positions that receive a value
//     because their krows×kcols window lies entirely inside the grid.
//   - Make "not computed" borders explicit instead of overloading the zero value
//     the engines leave there.

package grid

import "fmt"

// Region is a half-open rectangle [Row0, Row1) × [Col0, Col1) of grid positions.
// The zero Region is empty.
type Region struct {
	Row0, Row1 int // first row, one past last row
	Col0, Col1 int // first column, one past last column
}

// Interior returns the region of centers written by a windowed filter over a
// rows×cols grid with a krows×kcols window.
//
// A window with top-left corner (i, j) fits when i <= rows-krows and
// j <= cols-kcols; its center is (i+krows/2, j+kcols/2). When the window is
// larger than the grid on either axis the result is empty.
// Complexity: O(1).
func Interior(rows, cols, krows, kcols int) Region {
	if krows < 1 || kcols < 1 || krows > rows || kcols > cols {
		return Region{}
	}

	return Region{
		Row0: krows / 2,
		Row1: krows/2 + rows - krows + 1,
		Col0: kcols / 2,
		Col1: kcols/2 + cols - kcols + 1,
	}
}

// Empty reports whether the region holds no position.
func (r Region) Empty() bool {
	return r.Row1 <= r.Row0 || r.Col1 <= r.Col0
}

// Rows returns the number of rows covered by r.
func (r Region) Rows() int {
	if r.Empty() {
		return 0
	}
	return r.Row1 - r.Row0
}

// Cols returns the number of columns covered by r.
func (r Region) Cols() int {
	if r.Empty() {
		return 0
	}
	return r.Col1 - r.Col0
}

// Len returns the number of positions in r.
func (r Region) Len() int {
	return r.Rows() * r.Cols()
}

// Contains reports whether (i, j) lies inside r.
func (r Region) Contains(i, j int) bool {
	return i >= r.Row0 && i < r.Row1 && j >= r.Col0 && j < r.Col1
}

// Each calls fn for every position of r in row-major order.
func (r Region) Each(fn func(i, j int)) {
	if r.Empty() {
		return
	}
	var i, j int
	for i = r.Row0; i < r.Row1; i++ {
		for j = r.Col0; j < r.Col1; j++ {
			fn(i, j)
		}
	}
}

// String implements fmt.Stringer.
func (r Region) String() string {
	if r.Empty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.Row0, r.Row1, r.Col0, r.Col1)
}
