// Package bounds answers value-range questions for fixed-width integers:
// the smallest and largest representable values and the representation
// width. Floats are deliberately excluded from Min/Max; their extremes are
// exposed by the floats package, which owns IEEE semantics.
package bounds

import (
	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// Min returns the smallest representable value of T.
func Min[T types.Integer]() T {
	return meta.MinInt[T]()
}

// Max returns the largest representable value of T.
func Max[T types.Integer]() T {
	return meta.MaxInt[T]()
}

// Bits returns the width of T's representation in bits.
func Bits[T types.Numeric]() uint {
	return meta.Bits[T]()
}
