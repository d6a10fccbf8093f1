package cast

import "github.com/bearlytools/num/types"

// ToFloat converts any numeric value into a float carrier with native cast
// semantics. Values beyond the carrier's mantissa round.
func ToFloat[F types.Float, T types.Numeric](v T) F {
	return F(v)
}

// FromFloat converts a float carrier back into T with native cast
// semantics: float targets round, integer targets truncate and saturate.
func FromFloat[T types.Numeric, F types.Float](f F) T {
	return As[T](f)
}
