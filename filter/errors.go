// SPDX-License-Identifier: MIT
// Package filter: sentinel error set.
// Sentinels are returned wrapped once with the operation name via
// filterErrorf; callers match them with errors.Is. Shape and window errors
// come from package grid unchanged (grid.ErrBadShape, grid.ErrDimensionMismatch,
// grid.ErrBadWindow), statistic errors from package accum.

package filter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/localstats/grid"
)

var (
	// ErrWindowTooLarge is returned under WithStrictWindow when no window fits
	// the grid. It matches grid.ErrDimensionMismatch via errors.Is.
	ErrWindowTooLarge = fmt.Errorf("filter: window larger than grid: %w", grid.ErrDimensionMismatch)

	// ErrNaNInf is returned under WithValidateFinite when a sample is NaN or ±Inf.
	ErrNaNInf = errors.New("filter: NaN or Inf sample")

	// ErrBadExponent is returned by BlockSum/BlockSums for an exponent other than 1 or 2.
	ErrBadExponent = errors.New("filter: exponent must be 1 or 2")

	// ErrUnknownMethod is returned by Compute for a Method outside the declared set.
	ErrUnknownMethod = errors.New("filter: unknown method")
)

// filterErrorf wraps err with the operation tag.
func filterErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
