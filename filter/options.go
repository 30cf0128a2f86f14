// SPDX-License-Identifier: MIT

// Package filter: functional configuration shared by both engines.
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - Defaults reproduce the plain contract (empty region on oversized windows,
//     raw variance, no input scan).
//   - Each switch changes behavior identically in the naive and fast engines,
//     so equivalence holds under any option set.
package filter

// Defaults (single source of truth).
const (
	// DefaultStrictWindow reports an oversized window as ErrWindowTooLarge
	// when true; otherwise the call succeeds with an empty region.
	DefaultStrictWindow = false

	// DefaultClampVariance clamps negative variance round-off to 0 in
	// KindVariance results. StdDev and RMSContrast always clamp before sqrt.
	DefaultClampVariance = false

	// DefaultValidateFinite scans floating inputs for NaN/±Inf before filtering.
	DefaultValidateFinite = false
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	strictWindow   bool
	clampVariance  bool
	validateFinite bool
}

// WithStrictWindow makes a window larger than the grid an error
// (ErrWindowTooLarge) instead of an empty region.
func WithStrictWindow() Option {
	return func(o *Options) { o.strictWindow = true }
}

// WithClampVariance clamps negative KindVariance results to 0.
func WithClampVariance() Option {
	return func(o *Options) { o.clampVariance = true }
}

// WithValidateFinite rejects NaN and ±Inf samples with ErrNaNInf.
// Integral inputs are never scanned.
func WithValidateFinite() Option {
	return func(o *Options) { o.validateFinite = true }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// StrictWindow reports whether oversized windows are errors.
func (o Options) StrictWindow() bool { return o.strictWindow }

// ClampVariance reports whether negative variance is clamped.
func (o Options) ClampVariance() bool { return o.clampVariance }

// ValidateFinite reports whether inputs are scanned for NaN/Inf.
func (o Options) ValidateFinite() bool { return o.validateFinite }

// gatherOptions applies user options in order over the defaults; nil options
// are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		strictWindow:   DefaultStrictWindow,
		clampVariance:  DefaultClampVariance,
		validateFinite: DefaultValidateFinite,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
