// Package sign answers sign questions separately from general arithmetic so
// unsigned types are never forced through meaningless operations: they are
// simply never negative and Abs is the identity.
package sign

import (
	"math"

	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// IsPositive reports whether v is strictly above zero. Zero is neither
// positive nor negative; NaN is neither.
func IsPositive[T types.Numeric](v T) bool {
	return v > 0
}

// IsNegative reports whether v is strictly below zero. Always false for
// unsigned types.
func IsNegative[T types.Numeric](v T) bool {
	return v < 0
}

// Abs returns the absolute value of v. For floats the sign bit is cleared,
// so Abs(-0.0) is +0.0 and Abs(NaN) is NaN. For a signed integer MIN the
// result wraps back to MIN: the true absolute value is not representable
// and this is deliberately not guarded. Use arith.CheckedAbs to detect it.
func Abs[T types.Numeric](v T) T {
	if meta.IsFloat[T]() {
		// Exact at both widths: float32 -> float64 -> float32 loses nothing.
		return T(math.Abs(float64(v)))
	}
	if v < 0 {
		return -v
	}
	return v
}

// Signum returns -1, 0 or 1 in T's own representation for negative, zero
// and positive v. Float NaN propagates.
func Signum[T types.Numeric](v T) T {
	if meta.IsFloat[T]() && v != v {
		return v
	}
	switch {
	case v > 0:
		return 1
	case v < 0:
		var zero T
		return zero - 1
	}
	var zero T
	return zero
}
