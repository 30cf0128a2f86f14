// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All validators return these sentinels; callers match them via errors.Is.

package grid

import "errors"

var (
	// ErrBadShape is returned when rows or cols is not positive.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrDimensionMismatch indicates that a buffer length differs from rows*cols,
	// or that a window does not fit a grid where at least one output is expected.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrBadWindow is returned when a window side is smaller than 1.
	ErrBadWindow = errors.New("grid: window sides must be >= 1")
)

// ErrOutOfRange indicates a row or column index outside the grid.
var ErrOutOfRange = errors.New("grid: index out of range")
