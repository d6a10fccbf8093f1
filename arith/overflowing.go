package arith

import (
	"github.com/bearlytools/num/bounds"
	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// OverflowingAdd returns the wrapped sum and whether wrapping occurred.
func OverflowingAdd[T types.Integer](a, b T) (T, bool) {
	_, ok := CheckedAdd(a, b)
	return a + b, !ok
}

// OverflowingSub returns the wrapped difference and whether wrapping
// occurred.
func OverflowingSub[T types.Integer](a, b T) (T, bool) {
	_, ok := CheckedSub(a, b)
	return a - b, !ok
}

// OverflowingMul returns the wrapped product and whether wrapping occurred.
func OverflowingMul[T types.Integer](a, b T) (T, bool) {
	_, ok := CheckedMul(a, b)
	return a * b, !ok
}

// OverflowingNeg returns the wrapped negation and whether wrapping occurred.
func OverflowingNeg[T types.Integer](v T) (T, bool) {
	_, ok := CheckedNeg(v)
	return -v, !ok
}

// OverflowingDiv returns the wrapped quotient and whether wrapping occurred;
// only signed MIN / -1 wraps. A zero b panics exactly like the / it wraps.
func OverflowingDiv[T types.Integer](a, b T) (T, bool) {
	return a / b, meta.IsSigned[T]() && a == bounds.Min[T]() && b == T(0)-1
}

// OverflowingRem returns the wrapped remainder and whether the intermediate
// quotient wrapped; MIN % -1 reports (0, true). A zero b panics exactly like
// the % it wraps.
func OverflowingRem[T types.Integer](a, b T) (T, bool) {
	return a % b, meta.IsSigned[T]() && a == bounds.Min[T]() && b == T(0)-1
}

// OverflowingShl shifts by amount modulo T's bit width and reports whether
// the amount was masked.
func OverflowingShl[T types.Integer](v T, amount uint) (T, bool) {
	return WrappingShl(v, amount), amount >= meta.Bits[T]()
}

// OverflowingShr shifts by amount modulo T's bit width and reports whether
// the amount was masked.
func OverflowingShr[T types.Integer](v T, amount uint) (T, bool) {
	return WrappingShr(v, amount), amount >= meta.Bits[T]()
}
