// Package accum provides the stateful reducers fed by the naive windowed filter.
//
// Every accumulator exposes the same capability set:
//
//	Update(x) : fold one sample in (order-independent)
//	Result()  : the statistic over everything folded so far
//	Reset()   : forget all samples so the value can be reused per window
//	Count()   : number of samples folded in
//
// The set of statistics is closed and small (see Kind):
//
//   - Average     : Σx / n
//   - Variance    : Σx²/n − (Σx/n)², the E[x²] − E[x]² identity
//   - StdDev      : sqrt(Variance), negative round-off clamped to 0
//   - RMSContrast : the same number as StdDev under its image-domain name
//
// Accumulators are generic over the sample type and total their samples
// exactly through Sum: integral samples never pass through float64, and
// floating samples are added without rounding. Each moment is rounded once,
// when Result reads it, so the result does not depend on update order.
//
// Result on an accumulator that has seen no sample returns
// ErrDegenerateAccumulator instead of dividing by zero.
package accum
