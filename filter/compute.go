// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"

	"github.com/katalvlaran/localstats/accum"
	"github.com/katalvlaran/localstats/grid"
)

// Method selects the evaluation strategy.
type Method int

const (
	// MethodFast evaluates through separable block moments (FastFilter).
	MethodFast Method = iota

	// MethodNaive rescans every window (Filter).
	MethodNaive
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodFast:
		return "fast"
	case MethodNaive:
		return "naive"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "fast" / "naive" (also "slow") to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "fast":
		return MethodFast, nil
	case "naive", "slow":
		return MethodNaive, nil
	}
	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// Compute dispatches to Filter or FastFilter.
// Errors: ErrUnknownMethod, plus everything the selected engine returns.
func Compute[T, U grid.Number](m Method, kind accum.Kind, p []T, q []U, rows, cols, krows, kcols int, opts ...Option) (grid.Region, error) {
	switch m {
	case MethodFast:
		return FastFilter(kind, p, q, rows, cols, krows, kcols, opts...)
	case MethodNaive:
		return Filter(kind, p, q, rows, cols, krows, kcols, opts...)
	}
	return grid.Region{}, filterErrorf("Compute", ErrUnknownMethod)
}
