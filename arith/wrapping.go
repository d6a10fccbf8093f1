package arith

import (
	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// WrappingAdd adds two numbers, wrapping around at the type's boundary.
func WrappingAdd[T types.Integer](a, b T) T {
	return a + b
}

// WrappingSub subtracts b from a, wrapping around at the type's boundary.
func WrappingSub[T types.Integer](a, b T) T {
	return a - b
}

// WrappingMul multiplies two numbers, wrapping around at the type's
// boundary.
func WrappingMul[T types.Integer](a, b T) T {
	return a * b
}

// WrappingNeg negates v, wrapping around at the type's boundary: MIN stays
// MIN for signed types, and unsigned values become their two's complement.
func WrappingNeg[T types.Integer](v T) T {
	return -v
}

// WrappingDiv divides a by b. The only wrapping case is signed MIN / -1,
// where the quotient wraps back to MIN. A zero b panics exactly like the /
// it wraps.
func WrappingDiv[T types.Integer](a, b T) T {
	return a / b
}

// WrappingRem returns a % b; the signed MIN % -1 case yields zero. A zero b
// panics exactly like the % it wraps.
func WrappingRem[T types.Integer](a, b T) T {
	return a % b
}

// WrappingShl shifts v left by amount modulo T's bit width.
func WrappingShl[T types.Integer](v T, amount uint) T {
	return v << (amount & (meta.Bits[T]() - 1))
}

// WrappingShr shifts v right by amount modulo T's bit width.
func WrappingShr[T types.Integer](v T, amount uint) T {
	return v >> (amount & (meta.Bits[T]() - 1))
}
