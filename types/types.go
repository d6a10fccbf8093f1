// Package types defines the capability sets of the numeric hierarchy as Go
// type sets. Generic code should require the narrowest set that covers the
// operations it actually uses: Integer for code that shifts or masks, Float
// for code that needs IEEE semantics, Numeric for plain arithmetic.
//
// Every element uses the ~ form, so defined types whose underlying type is a
// built-in numeric type conform automatically. That is the extension story
// for user types; the built-in wiring itself is fixed.
package types

import "golang.org/x/exp/constraints"

// Signed is any signed integer representation.
type Signed = constraints.Signed

// Unsigned is any unsigned integer representation, including ~uintptr.
type Unsigned = constraints.Unsigned

// Integer is any fixed-width integer representation, signed or unsigned.
type Integer = constraints.Integer

// Float is any IEEE-754 floating point representation.
type Float = constraints.Float

// Numeric is any type that supports the arithmetic operators + - * /.
// This is the minimal bound generic arithmetic code should require.
type Numeric interface {
	constraints.Integer | constraints.Float
}
