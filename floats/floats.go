// Package floats is the core floating point capability tier: classification,
// bit-level decomposition, sign manipulation and IEEE min/max. Everything is
// derived from the raw IEEE-754 bit pattern, so the package needs no math
// runtime and works in environments where one is unavailable. The full tier,
// with transcendental and rounding operations behind an injectable backend,
// lives in the real package; every real.Ops value also satisfies everything
// here.
package floats

import (
	"fmt"

	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// Category is the IEEE-754 class of a floating point value.
type Category uint8

const (
	CatNaN       Category = 0
	CatInfinite  Category = 1
	CatZero      Category = 2
	CatSubnormal Category = 3
	CatNormal    Category = 4
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CatNaN:
		return "NaN"
	case CatInfinite:
		return "Infinite"
	case CatZero:
		return "Zero"
	case CatSubnormal:
		return "Subnormal"
	case CatNormal:
		return "Normal"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// shape returns the significand and exponent field widths of F.
func shape[F types.Float]() (manBits, expBits uint) {
	if meta.Bits[F]() == 32 {
		return 23, 8
	}
	return 52, 11
}

// ToBits returns the IEEE-754 bit pattern of f, widened to uint64 for
// 32-bit floats.
func ToBits[F types.Float](f F) uint64 {
	return meta.Pattern(f)
}

// FromBits rebuilds an F from an IEEE-754 bit pattern produced by ToBits.
func FromBits[F types.Float](b uint64) F {
	return meta.FromPattern[F](b)
}

// IsNaN reports whether f is an IEEE-754 "not a number" value.
func IsNaN[F types.Float](f F) bool {
	return f != f
}

// IsInf reports whether f is an infinity of either sign.
func IsInf[F types.Float](f F) bool {
	manBits, expBits := shape[F]()
	b := ToBits(f)
	expMax := uint64(1)<<expBits - 1
	return (b>>manBits)&expMax == expMax && b&(uint64(1)<<manBits-1) == 0
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite[F types.Float](f F) bool {
	manBits, expBits := shape[F]()
	expMax := uint64(1)<<expBits - 1
	return (ToBits(f)>>manBits)&expMax != expMax
}

// IsNormal reports whether f is a normal number: finite, nonzero and not
// subnormal.
func IsNormal[F types.Float](f F) bool {
	manBits, expBits := shape[F]()
	expMax := uint64(1)<<expBits - 1
	e := (ToBits(f) >> manBits) & expMax
	return e != 0 && e != expMax
}

// Classify returns the IEEE-754 category of f.
func Classify[F types.Float](f F) Category {
	manBits, expBits := shape[F]()
	b := ToBits(f)
	expMax := uint64(1)<<expBits - 1
	man := b & (uint64(1)<<manBits - 1)
	switch (b >> manBits) & expMax {
	case expMax:
		if man == 0 {
			return CatInfinite
		}
		return CatNaN
	case 0:
		if man == 0 {
			return CatZero
		}
		return CatSubnormal
	}
	return CatNormal
}

// SignBit reports whether the sign bit of f is set. True for -0.0 and for
// negative NaN patterns.
func SignBit[F types.Float](f F) bool {
	manBits, expBits := shape[F]()
	return ToBits(f)>>(manBits+expBits) != 0
}

// Copysign returns a value with the magnitude of f and the sign of sgn.
func Copysign[F types.Float](f, sgn F) F {
	manBits, expBits := shape[F]()
	mask := uint64(1) << (manBits + expBits)
	return FromBits[F](ToBits(f)&^mask | ToBits(sgn)&mask)
}

// Abs returns f with the sign bit cleared: Abs(-0.0) is +0.0, Abs(NaN) is
// NaN.
func Abs[F types.Float](f F) F {
	manBits, expBits := shape[F]()
	return FromBits[F](ToBits(f) &^ (uint64(1) << (manBits + expBits)))
}

// Neg returns f with the sign bit flipped. Unlike the - operator it also
// flips the sign of NaN patterns, which is what bit-level code expects.
func Neg[F types.Float](f F) F {
	manBits, expBits := shape[F]()
	return FromBits[F](ToBits(f) ^ uint64(1)<<(manBits+expBits))
}

// Min returns the smaller of a and b. NaN is never preferred over a number;
// Min(NaN, NaN) is NaN. When both are zero the negative zero wins.
func Min[F types.Float](a, b F) F {
	switch {
	case IsNaN(a):
		return b
	case IsNaN(b):
		return a
	case a < b:
		return a
	case b < a:
		return b
	case SignBit(a):
		return a
	}
	return b
}

// Max returns the larger of a and b. NaN is never preferred over a number;
// Max(NaN, NaN) is NaN. When both are zero the positive zero wins.
func Max[F types.Float](a, b F) F {
	switch {
	case IsNaN(a):
		return b
	case IsNaN(b):
		return a
	case a > b:
		return a
	case b > a:
		return b
	case SignBit(a):
		return b
	}
	return a
}

// Decode splits a finite f into (mantissa, exponent, sign) such that
// sign * mantissa * 2^exponent == f exactly. The mantissa carries the
// implicit bit for normal values. Results for NaN and infinities follow the
// raw fields and carry no meaning.
func Decode[F types.Float](f F) (mantissa uint64, exponent int, sgn int) {
	manBits, expBits := shape[F]()
	b := ToBits(f)
	expMax := uint64(1)<<expBits - 1
	bias := int(uint64(1)<<(expBits-1) - 1)

	sgn = 1
	if b>>(manBits+expBits) != 0 {
		sgn = -1
	}
	e := int((b >> manBits) & expMax)
	mantissa = b & (uint64(1)<<manBits - 1)
	if e == 0 {
		// Subnormal: no implicit bit; shift once so the exponent formula
		// below holds unchanged.
		mantissa <<= 1
	} else {
		mantissa |= uint64(1) << manBits
	}
	exponent = e - bias - int(manBits)
	return mantissa, exponent, sgn
}
