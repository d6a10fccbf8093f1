// Package meta derives the per-type facts that drive every generic numeric
// implementation in this module: representation width, signedness, floatness
// and the 64-bit carrier pattern of a value. Each fact is computed from the
// type itself, never from a lookup table, so a defined type with a built-in
// numeric underlying type gets the exact same answers as the built-in.
//
// This is the single conformance template for the whole module: the public
// packages (bounds, arith, cast, floats, numbin, atomics) branch on these
// facts instead of duplicating per-width code.
package meta

import (
	"math"
	"unsafe"

	"github.com/bearlytools/num/types"
)

// Bits returns the width of T's representation in bits.
func Bits[T types.Numeric]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// Bytes returns the width of T's representation in bytes.
func Bytes[T types.Numeric]() uint {
	var z T
	return uint(unsafe.Sizeof(z))
}

// IsSigned reports whether T can represent values below zero. True for all
// floating point types.
func IsSigned[T types.Numeric]() bool {
	var zero T
	one := T(1)
	return zero-one < zero
}

// IsFloat reports whether T is a floating point representation.
func IsFloat[T types.Numeric]() bool {
	return T(1)/T(2) != 0
}

// MantissaDigits returns the number of significand digits of a floating
// point T, counting the implicit bit. Only meaningful when IsFloat[T]().
func MantissaDigits[T types.Numeric]() uint {
	if Bits[T]() == 32 {
		return 24
	}
	return 53
}

// MinInt returns the smallest representable value of an integer T. Built by
// repeated doubling so it never needs an operator floats lack; callers must
// not instantiate it with a float type.
func MinInt[T types.Numeric]() T {
	if !IsSigned[T]() {
		var zero T
		return zero
	}
	m := T(0) - 1
	for i := uint(1); i < Bits[T](); i++ {
		m += m
	}
	return m
}

// MaxInt returns the largest representable value of an integer T. Callers
// must not instantiate it with a float type.
func MaxInt[T types.Numeric]() T {
	if IsSigned[T]() {
		var zero T
		return zero - (MinInt[T]() + 1)
	}
	m := T(0)
	m -= 1
	return m
}

// Pattern returns the representation of v widened to a uint64 carrier:
// the IEEE-754 bit pattern for floats, the two's-complement bit pattern
// masked to T's width for integers. FromPattern inverts it.
func Pattern[T types.Numeric](v T) uint64 {
	if IsFloat[T]() {
		if Bits[T]() == 32 {
			return uint64(math.Float32bits(float32(v)))
		}
		return math.Float64bits(float64(v))
	}
	mask := ^uint64(0) >> (64 - Bits[T]())
	return uint64(v) & mask
}

// FromPattern rebuilds a T from the carrier pattern produced by Pattern.
func FromPattern[T types.Numeric](u uint64) T {
	if IsFloat[T]() {
		if Bits[T]() == 32 {
			return T(math.Float32frombits(uint32(u)))
		}
		return T(math.Float64frombits(u))
	}
	return T(u)
}
