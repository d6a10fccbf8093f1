package arith

import "github.com/bearlytools/num/types"

// CheckedSum adds the elements of vs, reporting false if any partial sum
// overflows. An empty slice sums to zero. For signed types the order of
// elements can decide whether an intermediate sum overflows.
func CheckedSum[T types.Integer](vs []T) (T, bool) {
	var acc T
	for _, v := range vs {
		var ok bool
		if acc, ok = CheckedAdd(acc, v); !ok {
			return 0, false
		}
	}
	return acc, true
}

// CheckedProduct multiplies the elements of vs, reporting false if any
// partial product overflows. An empty slice multiplies to one.
func CheckedProduct[T types.Integer](vs []T) (T, bool) {
	acc := T(1)
	for _, v := range vs {
		var ok bool
		if acc, ok = CheckedMul(acc, v); !ok {
			return 0, false
		}
	}
	return acc, true
}
