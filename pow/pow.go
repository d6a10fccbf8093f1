// Package pow provides generic exponentiation and reciprocals, decoupled
// from the float capability tiers so integer types get them too.
package pow

import (
	"github.com/bearlytools/num/arith"
	"github.com/bearlytools/num/types"
)

// Pow raises base to exp by repeated squaring. Pow(x, 0) is one for every
// x, including zero. Negative bases follow even/odd exponent parity.
// Integer overflow wraps; use Checked to detect it.
func Pow[T types.Numeric](base T, exp uint) T {
	if exp == 0 {
		return 1
	}
	for exp&1 == 0 {
		base *= base
		exp >>= 1
	}
	if exp == 1 {
		return base
	}
	acc := base
	for exp > 1 {
		exp >>= 1
		base *= base
		if exp&1 == 1 {
			acc *= base
		}
	}
	return acc
}

// Checked raises base to exp, reporting false if any intermediate product
// overflows.
func Checked[T types.Integer](base T, exp uint) (T, bool) {
	if exp == 0 {
		return 1, true
	}
	var ok bool
	for exp&1 == 0 {
		if base, ok = arith.CheckedMul(base, base); !ok {
			return 0, false
		}
		exp >>= 1
	}
	if exp == 1 {
		return base, true
	}
	acc := base
	for exp > 1 {
		exp >>= 1
		if base, ok = arith.CheckedMul(base, base); !ok {
			return 0, false
		}
		if exp&1 == 1 {
			if acc, ok = arith.CheckedMul(acc, base); !ok {
				return 0, false
			}
		}
	}
	return acc, true
}

// Inv returns the multiplicative inverse one/v. It is a thin adapter over
// division and inherits its zero-divisor behavior: floats produce ±Inf,
// integers panic the way 1/0 does. It is not a safety boundary.
func Inv[T types.Numeric](v T) T {
	one := T(1)
	return one / v
}
