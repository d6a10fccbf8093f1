// Package dist calculates distances between numeric values, which generic
// algorithms need to decide whether a demanded precision has been reached.
// Distance is the norm of the difference, so any type with a norm gets a
// distance for free; that blanket is spelled out here once instead of per
// call site.
package dist

import (
	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/sign"
	"github.com/bearlytools/num/types"
)

// Norm returns the magnitude of v: the absolute value for signed and float
// types, v itself for unsigned types. Like sign.Abs, the signed MIN wraps
// back to MIN; Norm(NaN) is NaN.
func Norm[T types.Numeric](v T) T {
	return sign.Abs(v)
}

// Distance returns the distance between a and b, the norm of their
// difference. For unsigned types the smaller operand is subtracted from the
// larger, so the order of a and b never matters. For signed integers a
// difference beyond the type's range wraps; when the operands may sit at
// opposite extremes, compute in a wider type. NaN operands propagate.
func Distance[T types.Numeric](a, b T) T {
	if !meta.IsFloat[T]() && !meta.IsSigned[T]() {
		if a < b {
			return b - a
		}
		return a - b
	}
	return Norm(a - b)
}

// Normalized returns v divided by its norm, the unit value carrying v's
// sign. A thin adapter over division like pow.Inv: a zero norm panics for
// integers and yields NaN for floats, and integer division makes the result
// 0 or ±1 at best, so float types are the meaningful domain.
func Normalized[T types.Numeric](v T) T {
	return v / Norm(v)
}
