// Package real is the full floating point capability tier: transcendental,
// rounding and fused operations on top of the core tier in the floats
// package. The math routines are supplied by a Backend so constrained
// environments can substitute a software implementation; Libm is the
// standard library implementation used when no backend is given. Code that
// only needs classification or bit manipulation should depend on the floats
// package directly and never pays for a backend.
package real

import "math"

// Backend supplies the transcendental and rounding routines the full tier
// is built on. All signatures are float64; Ops converts at the edges for
// float32, which matches how such routines are provided on every platform
// Go targets. Implementations must be stateless and safe for concurrent
// use.
type Backend interface {
	Sin(x float64) float64
	Cos(x float64) float64
	Tan(x float64) float64
	Asin(x float64) float64
	Acos(x float64) float64
	Atan(x float64) float64
	Atan2(y, x float64) float64
	Sinh(x float64) float64
	Cosh(x float64) float64
	Tanh(x float64) float64
	Asinh(x float64) float64
	Acosh(x float64) float64
	Atanh(x float64) float64
	Exp(x float64) float64
	Exp2(x float64) float64
	Expm1(x float64) float64
	Log(x float64) float64
	Log2(x float64) float64
	Log10(x float64) float64
	Log1p(x float64) float64
	Pow(x, y float64) float64
	Sqrt(x float64) float64
	Cbrt(x float64) float64
	Hypot(x, y float64) float64
	Mod(x, y float64) float64
	Floor(x float64) float64
	Ceil(x float64) float64
	Round(x float64) float64
	Trunc(x float64) float64
	FMA(x, y, z float64) float64
}

// Libm is the Backend backed by the Go standard library math package.
type Libm struct{}

func (Libm) Sin(x float64) float64        { return math.Sin(x) }
func (Libm) Cos(x float64) float64        { return math.Cos(x) }
func (Libm) Tan(x float64) float64        { return math.Tan(x) }
func (Libm) Asin(x float64) float64       { return math.Asin(x) }
func (Libm) Acos(x float64) float64       { return math.Acos(x) }
func (Libm) Atan(x float64) float64       { return math.Atan(x) }
func (Libm) Atan2(y, x float64) float64   { return math.Atan2(y, x) }
func (Libm) Sinh(x float64) float64       { return math.Sinh(x) }
func (Libm) Cosh(x float64) float64       { return math.Cosh(x) }
func (Libm) Tanh(x float64) float64       { return math.Tanh(x) }
func (Libm) Asinh(x float64) float64      { return math.Asinh(x) }
func (Libm) Acosh(x float64) float64      { return math.Acosh(x) }
func (Libm) Atanh(x float64) float64      { return math.Atanh(x) }
func (Libm) Exp(x float64) float64        { return math.Exp(x) }
func (Libm) Exp2(x float64) float64       { return math.Exp2(x) }
func (Libm) Expm1(x float64) float64      { return math.Expm1(x) }
func (Libm) Log(x float64) float64        { return math.Log(x) }
func (Libm) Log2(x float64) float64       { return math.Log2(x) }
func (Libm) Log10(x float64) float64      { return math.Log10(x) }
func (Libm) Log1p(x float64) float64      { return math.Log1p(x) }
func (Libm) Pow(x, y float64) float64     { return math.Pow(x, y) }
func (Libm) Sqrt(x float64) float64       { return math.Sqrt(x) }
func (Libm) Cbrt(x float64) float64       { return math.Cbrt(x) }
func (Libm) Hypot(x, y float64) float64   { return math.Hypot(x, y) }
func (Libm) Mod(x, y float64) float64     { return math.Mod(x, y) }
func (Libm) Floor(x float64) float64      { return math.Floor(x) }
func (Libm) Ceil(x float64) float64       { return math.Ceil(x) }
func (Libm) Round(x float64) float64      { return math.Round(x) }
func (Libm) Trunc(x float64) float64      { return math.Trunc(x) }
func (Libm) FMA(x, y, z float64) float64  { return math.FMA(x, y, z) }
