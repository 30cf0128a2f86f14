// SPDX-License-Identifier: MIT

package grid

// Index maps (i, j) to the linear offset in a row-major buffer with cols columns.
// The caller keeps i < rows and j < cols.
// Complexity: O(1).
func Index(i, j, cols int) int {
	return i*cols + j
}

// Center returns the offset of the center of the krows×kcols window whose
// top-left corner is (i, j). The center is (krows/2, kcols/2) using floor
// division, so even window sides place it below/right of the geometric middle.
// Complexity: O(1).
func Center(i, j, cols, krows, kcols int) int {
	return Index(i+krows/2, j+kcols/2, cols)
}
