// SPDX-License-Identifier: MIT

package grid

// Number is the set of sample types a grid may hold.
// Integral members select rounding on output (see filter.Quantize).
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// IsIntegral reports whether T is an integer type.
// Complexity: O(1).
func IsIntegral[T Number]() bool {
	half := 0.5
	return T(half) == 0 // truncation toward zero only happens for integers
}
