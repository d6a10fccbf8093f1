package real

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/bearlytools/num/types"
)

// Special supplies the special functions that sit outside the basic
// transcendental set. Like Backend it is interchangeable and must be
// stateless.
type Special interface {
	Gamma(x float64) float64
	Lgamma(x float64) (lgamma float64, sign int)
	Erf(x float64) float64
	Erfc(x float64) float64
	Beta(a, b float64) float64
	Digamma(x float64) float64
}

// Gonum is the Special implementation over the standard library and gonum's
// mathext package.
type Gonum struct{}

func (Gonum) Gamma(x float64) float64                { return math.Gamma(x) }
func (Gonum) Lgamma(x float64) (float64, int)        { return math.Lgamma(x) }
func (Gonum) Erf(x float64) float64                  { return math.Erf(x) }
func (Gonum) Erfc(x float64) float64                 { return math.Erfc(x) }
func (Gonum) Beta(a, b float64) float64              { return mathext.Beta(a, b) }
func (Gonum) Digamma(x float64) float64              { return mathext.Digamma(x) }

// SpecialOps binds a Special to a concrete float type, the same way Ops
// binds a Backend.
type SpecialOps[F types.Float] struct {
	s Special
}

// NewSpecial returns a SpecialOps over s. A nil s selects Gonum.
func NewSpecial[F types.Float](s Special) SpecialOps[F] {
	if s == nil {
		s = Gonum{}
	}
	return SpecialOps[F]{s: s}
}

func (o SpecialOps[F]) Gamma(x F) F   { return F(o.s.Gamma(float64(x))) }
func (o SpecialOps[F]) Erf(x F) F     { return F(o.s.Erf(float64(x))) }
func (o SpecialOps[F]) Erfc(x F) F    { return F(o.s.Erfc(float64(x))) }
func (o SpecialOps[F]) Beta(a, b F) F { return F(o.s.Beta(float64(a), float64(b))) }
func (o SpecialOps[F]) Digamma(x F) F { return F(o.s.Digamma(float64(x))) }

// Lgamma returns the natural log of the absolute value of Gamma(x) and the
// sign of Gamma(x).
func (o SpecialOps[F]) Lgamma(x F) (F, int) {
	l, s := o.s.Lgamma(float64(x))
	return F(l), s
}
