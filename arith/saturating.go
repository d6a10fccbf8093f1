package arith

import (
	"github.com/bearlytools/num/bounds"
	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// SaturatingAdd adds two numbers, clamping at the type's boundary instead of
// wrapping.
func SaturatingAdd[T types.Integer](a, b T) T {
	if s, ok := CheckedAdd(a, b); ok {
		return s
	}
	if b < 0 {
		return bounds.Min[T]()
	}
	return bounds.Max[T]()
}

// SaturatingSub subtracts b from a, clamping at the type's boundary instead
// of wrapping.
func SaturatingSub[T types.Integer](a, b T) T {
	if d, ok := CheckedSub(a, b); ok {
		return d
	}
	if b > 0 {
		return bounds.Min[T]()
	}
	return bounds.Max[T]()
}

// SaturatingMul multiplies two numbers, clamping at the type's boundary
// instead of wrapping.
func SaturatingMul[T types.Integer](a, b T) T {
	if p, ok := CheckedMul(a, b); ok {
		return p
	}
	if (a < 0) != (b < 0) {
		return bounds.Min[T]()
	}
	return bounds.Max[T]()
}

// SaturatingDiv divides a by b; the one unrepresentable quotient, signed
// MIN / -1, clamps to MAX. A zero b panics exactly like the / it wraps.
func SaturatingDiv[T types.Integer](a, b T) T {
	if meta.IsSigned[T]() && a == bounds.Min[T]() && b == T(0)-1 {
		return bounds.Max[T]()
	}
	return a / b
}

// SaturatingNeg negates v, clamping at the type's boundary: MIN of a signed
// type becomes MAX, nonzero unsigned values become zero.
func SaturatingNeg[T types.Integer](v T) T {
	if n, ok := CheckedNeg(v); ok {
		return n
	}
	if v < 0 {
		return bounds.Max[T]()
	}
	return bounds.Min[T]()
}
