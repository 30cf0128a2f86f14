// SPDX-License-Identifier: MIT

package accum

import "errors"

var (
	// ErrDegenerateAccumulator is returned by Result when no sample was folded in.
	ErrDegenerateAccumulator = errors.New("accum: result requested with zero samples")

	// ErrUnknownKind is returned by New for a Kind outside the closed set.
	ErrUnknownKind = errors.New("accum: unknown statistic kind")
)
