// Package identity defines the additive and multiplicative identities for
// every numeric type. All values come straight from literals: Zero[float64]()
// is the exact positive-zero bit pattern and One[float64]() the exact 1.0,
// never an approximation, and nothing here is cached between calls.
//
// Laws: Zero[T]() + x == x and One[T]() * x == x for every x of T.
package identity

import "github.com/bearlytools/num/types"

// Zero returns the additive identity of T.
func Zero[T types.Numeric]() T {
	var zero T
	return zero
}

// IsZero reports whether v is the additive identity.
func IsZero[T types.Numeric](v T) bool {
	return v == 0
}

// One returns the multiplicative identity of T.
func One[T types.Numeric]() T {
	return 1
}

// IsOne reports whether v is the multiplicative identity.
func IsOne[T types.Numeric](v T) bool {
	return v == 1
}

// Two returns twice the multiplicative identity of T.
func Two[T types.Numeric]() T {
	return 2
}

// IsTwo reports whether v is twice the multiplicative identity.
func IsTwo[T types.Numeric](v T) bool {
	return v == 2
}

// Nth builds the value n by summing One n times. It exists so generic code
// can spell small constants in any numeric type without a conversion; large
// n on a narrow T overflows the same way repeated addition would.
func Nth[T types.Numeric](n uint) T {
	var v T
	for i := uint(0); i < n; i++ {
		v += 1
	}
	return v
}
