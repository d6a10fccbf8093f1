// Package half wires IEEE-754 half precision into the numeric hierarchy
// through github.com/x448/float16. Float16 is a defined uint16 holding a
// float bit pattern, so the type sets would misread it as an integer; it
// conforms through explicit functions instead, which is the template for
// adding any numeric type whose representation does not match its meaning.
package half

import (
	"github.com/x448/float16"

	"github.com/bearlytools/num/cast"
	"github.com/bearlytools/num/types"
)

// Zero returns the additive identity, positive zero.
func Zero() float16.Float16 {
	return float16.Frombits(0)
}

// One returns the multiplicative identity.
func One() float16.Float16 {
	return float16.Fromfloat32(1)
}

// IsZero reports whether f is zero of either sign.
func IsZero(f float16.Float16) bool {
	return f.Float32() == 0
}

// From converts v to half precision, reporting false unless the value is
// preserved exactly. NaN and infinities convert, matching the exactness
// contract's carve-out for non-finite float values; the round trip below
// could never admit NaN on its own.
func From[T types.Numeric](v T) (float16.Float16, bool) {
	f32, ok := cast.Exact[float32](v)
	if !ok {
		return Zero(), false
	}
	h := float16.Fromfloat32(f32)
	if f32 != f32 {
		return h, true
	}
	if h.Float32() != f32 {
		return Zero(), false
	}
	return h, true
}

// FromAs converts v to half precision with native cast semantics: values
// round, and overflow produces an infinity.
func FromAs[T types.Numeric](v T) float16.Float16 {
	return float16.Fromfloat32(cast.As[float32](v))
}

// To converts f to T, reporting false unless the value is preserved
// exactly. Every half precision value converts to float32 without loss, so
// the check is entirely on the T side.
func To[T types.Numeric](f float16.Float16) (T, bool) {
	return cast.Exact[T](f.Float32())
}

// ToAs converts f to T with native cast semantics.
func ToAs[T types.Numeric](f float16.Float16) T {
	return cast.As[T](f.Float32())
}

// Min returns the smaller of a and b with IEEE semantics: NaN is never
// preferred over a number.
func Min(a, b float16.Float16) float16.Float16 {
	switch {
	case a.IsNaN():
		return b
	case b.IsNaN():
		return a
	case b.Float32() < a.Float32():
		return b
	case a.Float32() == b.Float32() && b.Signbit():
		return b
	}
	return a
}

// Max returns the larger of a and b with IEEE semantics: NaN is never
// preferred over a number.
func Max(a, b float16.Float16) float16.Float16 {
	switch {
	case a.IsNaN():
		return b
	case b.IsNaN():
		return a
	case b.Float32() > a.Float32():
		return b
	case a.Float32() == b.Float32() && a.Signbit():
		return b
	}
	return a
}

// Abs returns f with the sign bit cleared.
func Abs(f float16.Float16) float16.Float16 {
	return float16.Frombits(f.Bits() &^ 0x8000)
}

// Neg returns f with the sign bit flipped.
func Neg(f float16.Float16) float16.Float16 {
	return float16.Frombits(f.Bits() ^ 0x8000)
}

// Copysign returns a value with the magnitude of f and the sign of sgn.
func Copysign(f, sgn float16.Float16) float16.Float16 {
	return float16.Frombits(f.Bits()&^0x8000 | sgn.Bits()&0x8000)
}
