package floats

import "github.com/bearlytools/num/types"

// NaN returns a quiet IEEE-754 "not a number" value.
func NaN[F types.Float]() F {
	manBits, expBits := shape[F]()
	expMax := uint64(1)<<expBits - 1
	return FromBits[F](expMax<<manBits | uint64(1)<<(manBits-1))
}

// Inf returns positive infinity if sgn >= 0, negative infinity otherwise.
func Inf[F types.Float](sgn int) F {
	manBits, expBits := shape[F]()
	expMax := uint64(1)<<expBits - 1
	b := expMax << manBits
	if sgn < 0 {
		b |= uint64(1) << (manBits + expBits)
	}
	return FromBits[F](b)
}

// Epsilon returns the difference between 1.0 and the next larger
// representable value of F.
func Epsilon[F types.Float]() F {
	manBits, expBits := shape[F]()
	bias := uint64(1)<<(expBits-1) - 1
	return FromBits[F]((bias - uint64(manBits)) << manBits)
}

// MaxValue returns the largest finite value of F.
func MaxValue[F types.Float]() F {
	manBits, expBits := shape[F]()
	expMax := uint64(1)<<expBits - 1
	return FromBits[F]((expMax-1)<<manBits | (uint64(1)<<manBits - 1))
}

// SmallestPositive returns the smallest positive value of F, a subnormal.
func SmallestPositive[F types.Float]() F {
	return FromBits[F](1)
}

// SmallestNormal returns the smallest positive normal value of F.
func SmallestNormal[F types.Float]() F {
	manBits, _ := shape[F]()
	return FromBits[F](uint64(1) << manBits)
}
