// Package atomics provides a lock-free cell for any numeric type. The value
// is stored as its 64-bit carrier pattern in a single atomic word, so one
// implementation covers every width and both floats. The zero Value holds
// the numeric zero and is ready to use.
package atomics

import (
	"sync/atomic"

	"github.com/bearlytools/num/arith"
	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// Value is an atomic cell holding one value of T. Must not be copied after
// first use.
type Value[T types.Numeric] struct {
	_ noCopy
	v atomic.Uint64
}

// Load returns the current value.
func (a *Value[T]) Load() T {
	return meta.FromPattern[T](a.v.Load())
}

// Store sets the value.
func (a *Value[T]) Store(v T) {
	a.v.Store(meta.Pattern(v))
}

// Swap sets the value and returns the previous one.
func (a *Value[T]) Swap(v T) T {
	return meta.FromPattern[T](a.v.Swap(meta.Pattern(v)))
}

// CompareAndSwap sets the value to new if it currently equals old,
// reporting whether it did. The comparison is on bit patterns: NaN equals
// itself here, and +0.0 does not equal -0.0.
func (a *Value[T]) CompareAndSwap(old, new T) bool {
	return a.v.CompareAndSwap(meta.Pattern(old), meta.Pattern(new))
}

// Add adds delta and returns the new value. Integer overflow wraps; float
// addition follows IEEE rules.
func (a *Value[T]) Add(delta T) T {
	for {
		old := a.v.Load()
		next := meta.FromPattern[T](old) + delta
		if a.v.CompareAndSwap(old, meta.Pattern(next)) {
			return next
		}
	}
}

// Sub subtracts delta and returns the new value. Integer overflow wraps;
// float subtraction follows IEEE rules.
func (a *Value[T]) Sub(delta T) T {
	for {
		old := a.v.Load()
		next := meta.FromPattern[T](old) - delta
		if a.v.CompareAndSwap(old, meta.Pattern(next)) {
			return next
		}
	}
}

// Update applies f to the current value until the swap lands, returning the
// value it installed. f must be pure: it may run more than once under
// contention.
func (a *Value[T]) Update(f func(T) T) T {
	for {
		old := a.v.Load()
		next := f(meta.FromPattern[T](old))
		if a.v.CompareAndSwap(old, meta.Pattern(next)) {
			return next
		}
	}
}

// AddSaturating adds delta to the cell, clamping at the type's boundary
// instead of wrapping, and returns the new value. A free function because
// saturation is an integer capability Value's float instantiations do not
// have.
func AddSaturating[T types.Integer](a *Value[T], delta T) T {
	for {
		old := a.v.Load()
		next := arith.SaturatingAdd(meta.FromPattern[T](old), delta)
		if a.v.CompareAndSwap(old, meta.Pattern(next)) {
			return next
		}
	}
}

// The bitwise and ordering operations are integer capabilities, so like
// AddSaturating they are free functions rather than Value methods. All of
// them return the new value.

// And replaces the cell with its bitwise AND with mask.
func And[T types.Integer](a *Value[T], mask T) T {
	for {
		old := a.v.Load()
		next := meta.FromPattern[T](old) & mask
		if a.v.CompareAndSwap(old, meta.Pattern(next)) {
			return next
		}
	}
}

// Or replaces the cell with its bitwise OR with mask.
func Or[T types.Integer](a *Value[T], mask T) T {
	for {
		old := a.v.Load()
		next := meta.FromPattern[T](old) | mask
		if a.v.CompareAndSwap(old, meta.Pattern(next)) {
			return next
		}
	}
}

// Xor replaces the cell with its bitwise XOR with mask.
func Xor[T types.Integer](a *Value[T], mask T) T {
	for {
		old := a.v.Load()
		next := meta.FromPattern[T](old) ^ mask
		if a.v.CompareAndSwap(old, meta.Pattern(next)) {
			return next
		}
	}
}

// Max replaces the cell with the larger of its value and v.
func Max[T types.Integer](a *Value[T], v T) T {
	for {
		old := a.v.Load()
		cur := meta.FromPattern[T](old)
		if cur >= v {
			return cur
		}
		if a.v.CompareAndSwap(old, meta.Pattern(v)) {
			return v
		}
	}
}

// Min replaces the cell with the smaller of its value and v.
func Min[T types.Integer](a *Value[T], v T) T {
	for {
		old := a.v.Load()
		cur := meta.FromPattern[T](old)
		if cur <= v {
			return cur
		}
		if a.v.CompareAndSwap(old, meta.Pattern(v)) {
			return v
		}
	}
}

// noCopy triggers go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
