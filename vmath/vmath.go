package vmath

import "math"

// Q20.12 fixed-point constants
// 12 fractional bits keep every product of two in-range game values inside
// int64 without 128-bit intermediates, and match replay files bit-for-bit
// across platforms.
const (
	Shift = 12
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

// --- Conversions ---

// FromFloat converts at the external boundary only; internal code never
// round-trips through float64.
func FromFloat(f float64) int64 { return int64(math.Floor(f * Scale)) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

func FromInt(i int) int64 { return int64(i) << Shift }
func ToInt(f int64) int   { return int(f >> Shift) }

// --- Arithmetic ---

// Mul multiplies two Q20.12 values and renormalizes with an arithmetic
// right shift (floor semantics for negative products).
func Mul(a, b int64) int64 {
	return (a * b) >> Shift
}

// MulTrunc renormalizes with integer division, truncating toward zero.
// Friction decay uses this so a negative velocity dies at exactly zero
// instead of sticking at -1 raw.
func MulTrunc(a, b int64) int64 {
	return (a * b) / Scale
}

// Div returns a/b in Q20.12. Division by zero returns 0; callers clamp
// denominators beforehand where zero is meaningful.
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	return (a << Shift) / b
}

// MulDiv computes (a * b) / c without renormalizing, for ratio terms where
// the scale factors cancel.
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	return (a * b) / c
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -Scale, 0, or Scale
func Sign(x int64) int64 {
	if x < 0 {
		return -Scale
	}
	if x > 0 {
		return Scale
	}
	return 0
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Sqrt returns the Q20.12 square root using Newton-Raphson iteration.
// Negative input clamps to 0 (documented edge case, not an error path).
// 10 iterations converge for the full range of game values (positions up
// to world span, squared speeds, blast discriminants).
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}

	guess := x
	if guess > Scale {
		guess = Scale
		for guess < x>>1 {
			guess <<= 1
		}
	} else {
		guess = x >> 1
		if guess == 0 {
			guess = 1
		}
	}

	for i := 0; i < 10; i++ {
		if guess == 0 {
			return 0
		}
		guess = (guess + Div(x, guess)) >> 1
	}
	return guess
}
