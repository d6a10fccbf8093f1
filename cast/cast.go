// Package cast converts values between numeric representations in two
// deliberate tiers:
//
//   - Exact succeeds only when the conversion preserves the value bit for
//     bit: no truncation, no sign loss, no dropped fraction, no rounding of
//     an integer that exceeds the target's mantissa. Validation code wants
//     this tier.
//   - As never fails and mirrors native numeric cast semantics: integer
//     narrowing truncates, sign changes reinterpret the bit pattern,
//     float-to-integer truncates toward zero and saturates out of range
//     (NaN becomes zero). Code that has already decided loss is acceptable
//     wants this tier.
//
// Go's own conversion leaves out-of-range float-to-integer results
// implementation defined; As normalizes that case, so it is safe in generic
// code where the operand types are not known.
package cast

import (
	"math"
	"math/bits"

	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// Exact converts v to To, reporting false unless the conversion preserves
// the value exactly. NaN and infinities convert exactly between float types;
// any float-to-integer conversion of them fails.
func Exact[To, From types.Numeric](v From) (To, bool) {
	switch {
	case meta.IsFloat[From]() && meta.IsFloat[To]():
		return floatToFloat[To](float64(v))
	case meta.IsFloat[From]():
		return floatToInt[To](float64(v))
	case meta.IsFloat[To]():
		return intToFloat[To](v)
	default:
		return intToInt[To](v)
	}
}

// As converts v to To with native cast semantics. It never fails.
func As[To, From types.Numeric](v From) To {
	if meta.IsFloat[From]() && !meta.IsFloat[To]() {
		return saturate[To](float64(v))
	}
	return To(v)
}

// floatToFloat widens for free; narrowing must round-trip. NaN and ±Inf
// always convert, matching the exactness contract's carve-out for
// non-finite values.
func floatToFloat[To types.Numeric](f float64) (To, bool) {
	if meta.Bits[To]() == 32 && f == f && !math.IsInf(f, 0) {
		if float64(float32(f)) != f {
			var zero To
			return zero, false
		}
	}
	return To(f), true
}

// floatToInt requires an integral value inside To's range. The range check
// uses exclusive power-of-two endpoints, which float64 represents exactly
// for every integer width.
func floatToInt[To types.Numeric](f float64) (To, bool) {
	var zero To
	if f != f || math.IsInf(f, 0) {
		return zero, false
	}
	if math.Trunc(f) != f {
		return zero, false
	}
	lo, hi := intRange[To]()
	if f < lo || f >= hi {
		return zero, false
	}
	return To(f), true
}

// intToFloat requires the span from the lowest to the highest set bit of the
// magnitude to fit the target's mantissa; anything wider would round.
func intToFloat[To, From types.Numeric](v From) (To, bool) {
	if v == 0 {
		var zero To
		return zero, true
	}
	var mag uint64
	if v < 0 {
		// MIN wraps to its own magnitude here, which is what we want.
		mag = uint64(-int64(v))
	} else {
		mag = uint64(v)
	}
	span := bits.Len64(mag) - bits.TrailingZeros64(mag)
	if span > int(meta.MantissaDigits[To]()) {
		var zero To
		return zero, false
	}
	return To(v), true
}

// intToInt converts and round-trips. The round trip alone can lie when a
// sign flip reinterprets the pattern (u16 65535 -> i8 -1 -> u16 65535), so
// the signs must agree too.
func intToInt[To, From types.Numeric](v From) (To, bool) {
	t := To(v)
	if From(t) != v || (t < 0) != (v < 0) {
		var zero To
		return zero, false
	}
	return t, true
}

// saturate implements the float-to-integer leg of As.
func saturate[To types.Numeric](f float64) To {
	if f != f {
		var zero To
		return zero
	}
	lo, hi := intRange[To]()
	if f < lo {
		return meta.MinInt[To]()
	}
	if f >= hi {
		return meta.MaxInt[To]()
	}
	return To(math.Trunc(f))
}

// intRange returns To's value range as the half-open float64 interval
// [lo, hi). Both endpoints are powers of two, so they are exact.
func intRange[To types.Numeric]() (lo, hi float64) {
	n := int(meta.Bits[To]())
	if meta.IsSigned[To]() {
		hi = math.Ldexp(1, n-1)
		return -hi, hi
	}
	return 0, math.Ldexp(1, n)
}
