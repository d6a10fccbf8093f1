// Package euclid provides euclidean division for integers: the remainder is
// always in [0, |b|), and the quotient is the one that makes
// a == Div(a, b)*b + Rem(a, b) hold. The float versions live on real.Ops,
// since they need rounding from the full float tier.
package euclid

import "github.com/bearlytools/num/types"

// Div returns the euclidean quotient of a and b. A zero b panics exactly
// like the / it wraps; MIN / -1 wraps like the / it wraps.
func Div[T types.Integer](a, b T) T {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// Rem returns the least nonnegative remainder of a mod b. A zero b panics
// exactly like the % it wraps.
func Rem[T types.Integer](a, b T) T {
	r := a % b
	if r < 0 {
		if b < 0 {
			return r - b
		}
		return r + b
	}
	return r
}

// DivRem returns both euclidean results in one call.
func DivRem[T types.Integer](a, b T) (q, r T) {
	return Div(a, b), Rem(a, b)
}
