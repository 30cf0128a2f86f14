// SPDX-License-Identifier: MIT
// Package: accum
//
// Purpose:
//   - Sum, the exact running total behind every accumulator and behind the
//     sliding passes of the separable engine.
//
// Exactness:
//
//	Integral samples (and their squares) are kept in a 192-bit two's
//	complement integer: |x| < 2^64 gives |x²| < 2^128, so any realistic
//	number of terms fits. Floating samples go into a big.Float whose
//	precision never forces rounding. Infinities and NaNs are counted apart,
//	so a window can slide past them and recover. Float64 rounds the exact
//	total once, to nearest even.
//
//	Because the total does not depend on the order or grouping of the
//	terms, the naive rescan and the two sliding passes produce the same
//	float64 for the same window.

package accum

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/katalvlaran/localstats/grid"
)

// wide is a 192-bit two's complement integer, least significant word first.
type wide [3]uint64

func wideInt(x int64) wide {
	ext := uint64(x >> 63)
	return wide{uint64(x), ext, ext}
}

func wideSquare(m uint64) wide {
	hi, lo := bits.Mul64(m, m)
	return wide{lo, hi, 0}
}

func (w *wide) add(v wide) {
	var c uint64
	w[0], c = bits.Add64(w[0], v[0], 0)
	w[1], c = bits.Add64(w[1], v[1], c)
	w[2], _ = bits.Add64(w[2], v[2], c)
}

func (w *wide) sub(v wide) {
	var b uint64
	w[0], b = bits.Sub64(w[0], v[0], 0)
	w[1], b = bits.Sub64(w[1], v[1], b)
	w[2], _ = bits.Sub64(w[2], v[2], b)
}

func (w wide) isZero() bool { return w[0]|w[1]|w[2] == 0 }

// bigInt returns w as a big.Int.
func (w wide) bigInt() *big.Int {
	neg := int64(w[2]) < 0
	if neg {
		m := wide{^w[0], ^w[1], ^w[2]}
		m.add(wide{1, 0, 0})
		w = m
	}

	b := new(big.Int).SetUint64(w[2])
	for _, word := range []uint64{w[1], w[0]} {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(word))
	}
	if neg {
		b.Neg(b)
	}

	return b
}

// float64 returns w rounded to the nearest float64.
func (w wide) float64() float64 {
	ext := uint64(int64(w[0]) >> 63)
	switch {
	case w[1] == ext && w[2] == ext: // fits int64
		return float64(int64(w[0]))
	case w[1] == 0 && w[2] == 0: // fits uint64
		return float64(w[0])
	}

	v, _ := new(big.Float).SetInt(w.bigInt()).Float64()
	return v
}

// Sum is an exact running total of samples or of their squares.
// The zero value is an empty total. A Sum must not be copied after first
// use; use Set.
type Sum struct {
	w    wide      // integral terms
	f    big.Float // floating terms
	term big.Float // scratch for the next floating term
	pinf int       // +Inf terms
	ninf int       // -Inf terms
	nan  int       // NaN terms
}

// ready lifts the big.Float precision so no operation ever rounds.
func (s *Sum) ready() {
	if s.f.Prec() != big.MaxPrec {
		s.f.SetPrec(big.MaxPrec)
		s.term.SetPrec(big.MaxPrec)
	}
}

// Fold adds (sign > 0) or removes (sign < 0) the term x^exp, exp being 1 or 2.
// Integral T never passes through float64.
func Fold[T grid.Number](s *Sum, x T, exp, sign int) {
	var t wide
	switch {
	case !grid.IsIntegral[T]():
		s.foldFloat(float64(x), exp, sign)
		return
	case isSigned[T]():
		v := int64(x)
		if exp == 2 {
			m := uint64(v)
			if v < 0 {
				m = -m
			}
			t = wideSquare(m)
		} else {
			t = wideInt(v)
		}
	default:
		v := uint64(x)
		if exp == 2 {
			t = wideSquare(v)
		} else {
			t = wide{v, 0, 0}
		}
	}

	if sign < 0 {
		s.w.sub(t)
	} else {
		s.w.add(t)
	}
}

func (s *Sum) foldFloat(x float64, exp, sign int) {
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}

	switch {
	case math.IsNaN(x):
		s.nan += sign
	case math.IsInf(x, 1), exp == 2 && math.IsInf(x, -1):
		s.pinf += sign
	case math.IsInf(x, -1):
		s.ninf += sign
	case x != 0:
		s.ready()
		s.term.SetFloat64(x)
		if exp == 2 {
			s.term.Mul(&s.term, &s.term)
		}
		if sign < 0 {
			s.f.Sub(&s.f, &s.term)
		} else {
			s.f.Add(&s.f, &s.term)
		}
	}
}

// Merge adds (sign > 0) or removes (sign < 0) the total o.
func (s *Sum) Merge(o *Sum, sign int) {
	if sign < 0 {
		s.w.sub(o.w)
		s.pinf -= o.pinf
		s.ninf -= o.ninf
		s.nan -= o.nan
	} else {
		s.w.add(o.w)
		s.pinf += o.pinf
		s.ninf += o.ninf
		s.nan += o.nan
	}
	if o.f.Sign() == 0 {
		return
	}

	s.ready()
	if sign < 0 {
		s.f.Sub(&s.f, &o.f)
	} else {
		s.f.Add(&s.f, &o.f)
	}
}

// Set makes s an exact copy of o.
func (s *Sum) Set(o *Sum) {
	s.w = o.w
	s.pinf, s.ninf, s.nan = o.pinf, o.ninf, o.nan
	s.ready()
	s.f.Set(&o.f)
}

// Reset empties the total, keeping its storage.
func (s *Sum) Reset() {
	s.w = wide{}
	s.pinf, s.ninf, s.nan = 0, 0, 0
	s.f.SetInt64(0)
}

// Float64 returns the exact total rounded to the nearest float64.
// A NaN term, or +Inf and -Inf terms together, give NaN; otherwise any
// infinite term gives that infinity.
func (s *Sum) Float64() float64 {
	switch {
	case s.nan > 0 || s.pinf > 0 && s.ninf > 0:
		return math.NaN()
	case s.pinf > 0:
		return math.Inf(1)
	case s.ninf > 0:
		return math.Inf(-1)
	case s.f.Sign() == 0:
		return s.w.float64()
	case s.w.isZero():
		v, _ := s.f.Float64()
		return v
	}

	var t big.Float
	t.SetPrec(big.MaxPrec)
	t.SetInt(s.w.bigInt())
	t.Add(&t, &s.f)
	v, _ := t.Float64()
	return v
}

// isSigned reports whether the integral type T can hold negative values.
func isSigned[T grid.Number]() bool {
	var zero T
	return zero-1 < zero
}
