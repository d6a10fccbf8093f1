// Package widening provides double-width arithmetic for unsigned integers:
// the full product of two values as a (hi, lo) pair and addition and
// subtraction with explicit carry and borrow. It stands in for the extended
// 128-bit integer pair on platforms without one: a 64x64 product lands in
// two 64-bit halves via math/bits.
package widening

import (
	"math/bits"

	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// Mul returns the full product of a and b split into high and low halves:
// the mathematical product is hi * 2^width + lo.
func Mul[T types.Unsigned](a, b T) (hi, lo T) {
	width := meta.Bits[T]()
	if width == 64 {
		h, l := bits.Mul64(uint64(a), uint64(b))
		return T(h), T(l)
	}
	w := uint64(a) * uint64(b)
	return T(w >> width), T(w)
}

// Add returns a + b + carry and the carry out. carry must be 0 or 1; both
// results fit the contract sum == a + b + carry (mod 2^width) with
// carryOut in {0, 1}.
func Add[T types.Unsigned](a, b, carry T) (sum, carryOut T) {
	width := meta.Bits[T]()
	if width == 64 {
		s, c := bits.Add64(uint64(a), uint64(b), uint64(carry))
		return T(s), T(c)
	}
	w := uint64(a) + uint64(b) + uint64(carry)
	return T(w), T(w >> width)
}

// Sub returns a - b - borrow and the borrow out. borrow must be 0 or 1.
func Sub[T types.Unsigned](a, b, borrow T) (diff, borrowOut T) {
	if meta.Bits[T]() == 64 {
		d, bo := bits.Sub64(uint64(a), uint64(b), uint64(borrow))
		return T(d), T(bo)
	}
	diff = a - b - borrow
	if uint64(b)+uint64(borrow) > uint64(a) {
		return diff, 1
	}
	return diff, 0
}
