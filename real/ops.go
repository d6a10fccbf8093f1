package real

import (
	"github.com/bearlytools/num/floats"
	"github.com/bearlytools/num/types"
)

// Ops binds a Backend to a concrete float type. The zero value is not
// usable; construct with New. Besides the full-tier operations, Ops exposes
// every core-tier operation by delegating to the floats package, so a
// function written against the core tier gets identical results from an
// Ops value with no extra plumbing.
type Ops[F types.Float] struct {
	b Backend
}

// New returns an Ops over b. A nil b selects Libm.
func New[F types.Float](b Backend) Ops[F] {
	if b == nil {
		b = Libm{}
	}
	return Ops[F]{b: b}
}

// Full tier.

func (o Ops[F]) Sin(x F) F        { return F(o.b.Sin(float64(x))) }
func (o Ops[F]) Cos(x F) F        { return F(o.b.Cos(float64(x))) }
func (o Ops[F]) Tan(x F) F        { return F(o.b.Tan(float64(x))) }
func (o Ops[F]) Asin(x F) F       { return F(o.b.Asin(float64(x))) }
func (o Ops[F]) Acos(x F) F       { return F(o.b.Acos(float64(x))) }
func (o Ops[F]) Atan(x F) F       { return F(o.b.Atan(float64(x))) }
func (o Ops[F]) Atan2(y, x F) F   { return F(o.b.Atan2(float64(y), float64(x))) }
func (o Ops[F]) Sinh(x F) F       { return F(o.b.Sinh(float64(x))) }
func (o Ops[F]) Cosh(x F) F       { return F(o.b.Cosh(float64(x))) }
func (o Ops[F]) Tanh(x F) F       { return F(o.b.Tanh(float64(x))) }
func (o Ops[F]) Asinh(x F) F      { return F(o.b.Asinh(float64(x))) }
func (o Ops[F]) Acosh(x F) F      { return F(o.b.Acosh(float64(x))) }
func (o Ops[F]) Atanh(x F) F      { return F(o.b.Atanh(float64(x))) }
func (o Ops[F]) Exp(x F) F        { return F(o.b.Exp(float64(x))) }
func (o Ops[F]) Exp2(x F) F       { return F(o.b.Exp2(float64(x))) }
func (o Ops[F]) Expm1(x F) F      { return F(o.b.Expm1(float64(x))) }
func (o Ops[F]) Log(x F) F        { return F(o.b.Log(float64(x))) }
func (o Ops[F]) Log2(x F) F       { return F(o.b.Log2(float64(x))) }
func (o Ops[F]) Log10(x F) F      { return F(o.b.Log10(float64(x))) }
func (o Ops[F]) Log1p(x F) F      { return F(o.b.Log1p(float64(x))) }
func (o Ops[F]) Pow(x, y F) F     { return F(o.b.Pow(float64(x), float64(y))) }
func (o Ops[F]) Sqrt(x F) F       { return F(o.b.Sqrt(float64(x))) }
func (o Ops[F]) Cbrt(x F) F       { return F(o.b.Cbrt(float64(x))) }
func (o Ops[F]) Hypot(x, y F) F   { return F(o.b.Hypot(float64(x), float64(y))) }
func (o Ops[F]) Mod(x, y F) F     { return F(o.b.Mod(float64(x), float64(y))) }
func (o Ops[F]) Floor(x F) F      { return F(o.b.Floor(float64(x))) }
func (o Ops[F]) Ceil(x F) F       { return F(o.b.Ceil(float64(x))) }
func (o Ops[F]) Round(x F) F      { return F(o.b.Round(float64(x))) }
func (o Ops[F]) Trunc(x F) F      { return F(o.b.Trunc(float64(x))) }
func (o Ops[F]) FMA(x, y, z F) F  { return F(o.b.FMA(float64(x), float64(y), float64(z))) }

// DivEuclid returns the euclidean quotient of a and b, the q for which
// a == q*b + RemEuclid(a, b).
func (o Ops[F]) DivEuclid(a, b F) F {
	q := o.Trunc(a / b)
	if o.Mod(a, b) < 0 {
		if b > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// RemEuclid returns the least nonnegative remainder of a mod b.
func (o Ops[F]) RemEuclid(a, b F) F {
	r := o.Mod(a, b)
	if r < 0 {
		return r + floats.Abs(b)
	}
	return r
}

// Core tier, delegated verbatim.

func (Ops[F]) IsNaN(x F) bool               { return floats.IsNaN(x) }
func (Ops[F]) IsInf(x F) bool               { return floats.IsInf(x) }
func (Ops[F]) IsFinite(x F) bool            { return floats.IsFinite(x) }
func (Ops[F]) IsNormal(x F) bool            { return floats.IsNormal(x) }
func (Ops[F]) Classify(x F) floats.Category { return floats.Classify(x) }
func (Ops[F]) SignBit(x F) bool             { return floats.SignBit(x) }
func (Ops[F]) Copysign(x, sgn F) F          { return floats.Copysign(x, sgn) }
func (Ops[F]) Abs(x F) F                    { return floats.Abs(x) }
func (Ops[F]) Neg(x F) F                    { return floats.Neg(x) }
func (Ops[F]) Min(a, b F) F                 { return floats.Min(a, b) }
func (Ops[F]) Max(a, b F) F                 { return floats.Max(a, b) }
func (Ops[F]) NaN() F                       { return floats.NaN[F]() }
func (Ops[F]) Inf(sgn int) F                { return floats.Inf[F](sgn) }
func (Ops[F]) Epsilon() F                   { return floats.Epsilon[F]() }
func (Ops[F]) MaxValue() F                  { return floats.MaxValue[F]() }
