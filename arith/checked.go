// Package arith provides overflow-aware integer arithmetic in four flavors:
//
//   - CheckedX returns (result, true), or (0, false) when the mathematical
//     result cannot be represented in T. This is the only failure channel:
//     checked division reports a zero divisor instead of panicking. The
//     other flavors wrap plain operators, so their div and rem panic on a
//     zero divisor exactly as / and % do.
//   - WrappingX reduces the mathematical result modulo 2^width.
//   - SaturatingX clamps the mathematical result to [bounds.Min, bounds.Max].
//   - OverflowingX returns the wrapped result plus a flag that reports
//     whether wrapping happened.
//
// Each flavor is one generic implementation driven by the type's width and
// signedness, not a copy per width, so a semantic fix lands everywhere at
// once.
package arith

import (
	"github.com/bearlytools/num/bounds"
	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// CheckedAdd adds two numbers, reporting false if the sum overflows.
func CheckedAdd[T types.Integer](a, b T) (T, bool) {
	s := a + b
	if meta.IsSigned[T]() {
		if (b > 0 && s < a) || (b < 0 && s > a) {
			return 0, false
		}
		return s, true
	}
	if s < a {
		return 0, false
	}
	return s, true
}

// CheckedSub subtracts b from a, reporting false if the difference overflows.
func CheckedSub[T types.Integer](a, b T) (T, bool) {
	d := a - b
	if meta.IsSigned[T]() {
		if (b < 0 && d < a) || (b > 0 && d > a) {
			return 0, false
		}
		return d, true
	}
	if b > a {
		return 0, false
	}
	return d, true
}

// CheckedMul multiplies two numbers, reporting false if the product
// overflows.
func CheckedMul[T types.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if meta.IsSigned[T]() {
		// MIN * -1 would make the quotient probe below divide MIN by -1,
		// so it has to go first.
		min := bounds.Min[T]()
		negOne := T(0) - 1
		if (a == min && b == negOne) || (b == min && a == negOne) {
			return 0, false
		}
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// CheckedDiv divides a by b, reporting false on a zero divisor or when the
// quotient overflows (MIN / -1 for signed types).
func CheckedDiv[T types.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if meta.IsSigned[T]() && a == bounds.Min[T]() && b == T(0)-1 {
		return 0, false
	}
	return a / b, true
}

// CheckedRem returns the remainder of a / b, reporting false on a zero
// divisor or on MIN % -1 for signed types, whose intermediate quotient
// overflows even though the remainder itself is zero.
func CheckedRem[T types.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if meta.IsSigned[T]() && a == bounds.Min[T]() && b == T(0)-1 {
		return 0, false
	}
	return a % b, true
}

// CheckedNeg negates v, reporting false when the negation is not
// representable: any nonzero unsigned value, or MIN for signed types.
func CheckedNeg[T types.Integer](v T) (T, bool) {
	if !meta.IsSigned[T]() {
		if v != 0 {
			return 0, false
		}
		return 0, true
	}
	if v == bounds.Min[T]() {
		return 0, false
	}
	return -v, true
}

// CheckedAbs returns the absolute value of v, reporting false for MIN of a
// signed type, which has no representable absolute value.
func CheckedAbs[T types.Integer](v T) (T, bool) {
	if v >= 0 {
		return v, true
	}
	return CheckedNeg(v)
}

// CheckedShl shifts v left, reporting false when amount is at least T's bit
// width. The primitive shift leaves that case to the platform; this
// normalizes it.
func CheckedShl[T types.Integer](v T, amount uint) (T, bool) {
	if amount >= meta.Bits[T]() {
		return 0, false
	}
	return v << amount, true
}

// CheckedShr shifts v right, reporting false when amount is at least T's bit
// width. Signed types shift arithmetically, unsigned logically, exactly as
// the >> operator does.
func CheckedShr[T types.Integer](v T, amount uint) (T, bool) {
	if amount >= meta.Bits[T]() {
		return 0, false
	}
	return v >> amount, true
}
