// SPDX-License-Identifier: MIT

package accum

import (
	"fmt"
	"math"

	"github.com/katalvlaran/localstats/grid"
)

// Accumulator is a reducer over the samples of one window.
// Update may be called any number of times in any order; Result is valid
// after at least one Update. Samples are totalled exactly (see Sum), so the
// result does not depend on the order of the updates.
type Accumulator[T grid.Number] interface {
	Update(x T)
	Result() (float64, error)
	Reset()
	Count() int
}

// New returns a fresh accumulator of samples of type T for kind.
// Errors: ErrUnknownKind.
func New[T grid.Number](kind Kind) (Accumulator[T], error) {
	switch kind {
	case KindAverage:
		return &Average[T]{}, nil
	case KindVariance:
		return &Variance[T]{}, nil
	case KindStdDev:
		return &StdDev[T]{}, nil
	case KindRMSContrast:
		return &RMSContrast[T]{}, nil
	}

	return nil, fmt.Errorf("New(%v): %w", kind, ErrUnknownKind)
}

// Mean returns sum/n. It is the reconstruction shared by Average and the fast
// engine, so both produce the same bits for the same moments.
func Mean(sum float64, n int) float64 {
	return sum / float64(n)
}

// MomentVariance returns sum2/n − (sum/n)². The result may be slightly
// negative when the true variance is ~0.
func MomentVariance(sum, sum2 float64, n int) float64 {
	mean := sum / float64(n)
	return sum2/float64(n) - float64(mean*mean) // conversion forbids FMA fusion
}

// SafeSqrt returns sqrt(v), treating negative v (round-off) as 0.
func SafeSqrt(v float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Average accumulates the running mean.
type Average[T grid.Number] struct {
	n   int
	sum Sum
}

// Update folds x into the running sum.
func (a *Average[T]) Update(x T) {
	a.n++
	Fold(&a.sum, x, 1, 1)
}

// Result returns Σx / n.
func (a *Average[T]) Result() (float64, error) {
	if a.n == 0 {
		return 0, ErrDegenerateAccumulator
	}
	return Mean(a.sum.Float64(), a.n), nil
}

// Reset clears the accumulator.
func (a *Average[T]) Reset() {
	a.n = 0
	a.sum.Reset()
}

// Count returns the number of samples folded in.
func (a *Average[T]) Count() int { return a.n }

// Variance accumulates the first two raw moments.
type Variance[T grid.Number] struct {
	n    int
	sum  Sum
	sum2 Sum
}

// Update folds x and x² into the running moments.
func (v *Variance[T]) Update(x T) {
	v.n++
	Fold(&v.sum, x, 1, 1)
	Fold(&v.sum2, x, 2, 1)
}

// Result returns Σx²/n − (Σx/n)², unclamped.
func (v *Variance[T]) Result() (float64, error) {
	if v.n == 0 {
		return 0, ErrDegenerateAccumulator
	}
	return MomentVariance(v.sum.Float64(), v.sum2.Float64(), v.n), nil
}

// Reset clears the accumulator.
func (v *Variance[T]) Reset() {
	v.n = 0
	v.sum.Reset()
	v.sum2.Reset()
}

// Count returns the number of samples folded in.
func (v *Variance[T]) Count() int { return v.n }

// StdDev is the square root of Variance. A variance that round-off pushed
// below zero yields 0 rather than NaN.
type StdDev[T grid.Number] struct {
	v Variance[T]
}

// Update folds x into the underlying variance.
func (s *StdDev[T]) Update(x T) { s.v.Update(x) }

// Result returns sqrt(max(variance, 0)).
func (s *StdDev[T]) Result() (float64, error) {
	variance, err := s.v.Result()
	if err != nil {
		return 0, err
	}
	return SafeSqrt(variance), nil
}

// Reset clears the accumulator.
func (s *StdDev[T]) Reset() { s.v.Reset() }

// Count returns the number of samples folded in.
func (s *StdDev[T]) Count() int { return s.v.n }

// RMSContrast is the root-mean-square contrast of a window, which is exactly
// the standard deviation of its intensities.
type RMSContrast[T grid.Number] struct {
	StdDev[T]
}
