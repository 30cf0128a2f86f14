// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Single source of truth for the shape and window checks shared by the
//     naive and fast engines.
//   - Return plain sentinels wrapped with the validator name so call sites can
//     wrap once more with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on success.

package grid

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape checks that a buffer of n elements holds a rows×cols grid.
//
// Errors:
//   - ErrBadShape if rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch if n != rows*cols.
//
// Complexity: O(1).
func ValidateShape(n, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}
	if n != rows*cols {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("len %d != %dx%d: %w", n, rows, cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateWindow checks that both window sides are at least 1.
// A window larger than the grid is NOT an error here; see Interior.
// Complexity: O(1).
func ValidateWindow(krows, kcols int) error {
	if krows < 1 || kcols < 1 {
		return validatorErrorf("ValidateWindow", ErrBadWindow)
	}

	return nil
}

// ValidatePair checks an input/output pair sharing one shape and a window.
// Order: input shape -> output shape -> window.
// Complexity: O(1).
func ValidatePair(np, nq, rows, cols, krows, kcols int) error {
	if err := ValidateShape(np, rows, cols); err != nil {
		return err
	}
	if err := ValidateShape(nq, rows, cols); err != nil {
		return err
	}

	return ValidateWindow(krows, kcols)
}
