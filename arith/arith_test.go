package arith

import (
	"math"
	"testing"
)

// Exhaustive sweeps over the 8-bit types, checked against arithmetic in a
// wide type. If the generic implementation is right at 8 bits it is right
// at every width, because nothing in it depends on the width except the
// metadata.

func TestCheckedAddSubMulInt8Exhaustive(t *testing.T) {
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			x, y := int8(a), int8(b)

			got, ok := CheckedAdd(x, y)
			want := a + b
			if inRange8(want) != ok {
				t.Fatalf("[TestCheckedAddSubMulInt8Exhaustive](add %d+%d): ok = %v, want %v", a, b, ok, inRange8(want))
			}
			if ok && int(got) != want {
				t.Fatalf("[TestCheckedAddSubMulInt8Exhaustive](add %d+%d): got %d, want %d", a, b, got, want)
			}
			if ok && got != WrappingAdd(x, y) {
				t.Fatalf("[TestCheckedAddSubMulInt8Exhaustive](add %d+%d): checked %d != wrapping %d", a, b, got, WrappingAdd(x, y))
			}

			got, ok = CheckedSub(x, y)
			want = a - b
			if inRange8(want) != ok {
				t.Fatalf("[TestCheckedAddSubMulInt8Exhaustive](sub %d-%d): ok = %v, want %v", a, b, ok, inRange8(want))
			}
			if ok && int(got) != want {
				t.Fatalf("[TestCheckedAddSubMulInt8Exhaustive](sub %d-%d): got %d, want %d", a, b, got, want)
			}

			got, ok = CheckedMul(x, y)
			want = a * b
			if inRange8(want) != ok {
				t.Fatalf("[TestCheckedAddSubMulInt8Exhaustive](mul %d*%d): ok = %v, want %v", a, b, ok, inRange8(want))
			}
			if ok && int(got) != want {
				t.Fatalf("[TestCheckedAddSubMulInt8Exhaustive](mul %d*%d): got %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestCheckedAddSubMulUint8Exhaustive(t *testing.T) {
	for a := 0; a <= math.MaxUint8; a++ {
		for b := 0; b <= math.MaxUint8; b++ {
			x, y := uint8(a), uint8(b)

			got, ok := CheckedAdd(x, y)
			if want := a + b; (want <= math.MaxUint8) != ok {
				t.Fatalf("[TestCheckedAddSubMulUint8Exhaustive](add %d+%d): ok = %v", a, b, ok)
			} else if ok && int(got) != want {
				t.Fatalf("[TestCheckedAddSubMulUint8Exhaustive](add %d+%d): got %d, want %d", a, b, got, want)
			}

			got, ok = CheckedSub(x, y)
			if want := a - b; (want >= 0) != ok {
				t.Fatalf("[TestCheckedAddSubMulUint8Exhaustive](sub %d-%d): ok = %v", a, b, ok)
			} else if ok && int(got) != want {
				t.Fatalf("[TestCheckedAddSubMulUint8Exhaustive](sub %d-%d): got %d, want %d", a, b, got, want)
			}

			got, ok = CheckedMul(x, y)
			if want := a * b; (want <= math.MaxUint8) != ok {
				t.Fatalf("[TestCheckedAddSubMulUint8Exhaustive](mul %d*%d): ok = %v", a, b, ok)
			} else if ok && int(got) != want {
				t.Fatalf("[TestCheckedAddSubMulUint8Exhaustive](mul %d*%d): got %d, want %d", a, b, got, want)
			}
		}
	}
}

func inRange8(v int) bool {
	return v >= math.MinInt8 && v <= math.MaxInt8
}

func TestCheckedDivRem(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int32
		want   int32
		wantOK bool
	}{
		{"simple", 7, 2, 3, true},
		{"negative", -7, 2, -3, true},
		{"divide by zero", 7, 0, 0, false},
		{"min by -1 overflows", math.MinInt32, -1, 0, false},
		{"min by 1", math.MinInt32, 1, math.MinInt32, true},
	}

	for _, test := range tests {
		got, ok := CheckedDiv(test.a, test.b)
		if ok != test.wantOK {
			t.Errorf("[TestCheckedDivRem](%s): ok = %v, want %v", test.name, ok, test.wantOK)
			continue
		}
		if got != test.want {
			t.Errorf("[TestCheckedDivRem](%s): got %d, want %d", test.name, got, test.want)
		}
	}

	// Remainder shares the failure cases, including MIN % -1 whose
	// intermediate quotient overflows.
	if _, ok := CheckedRem(int32(7), int32(0)); ok {
		t.Errorf("[TestCheckedDivRem](rem by zero): ok = true, want false")
	}
	if _, ok := CheckedRem(int32(math.MinInt32), int32(-1)); ok {
		t.Errorf("[TestCheckedDivRem](rem min by -1): ok = true, want false")
	}
	if got, ok := CheckedRem(int32(7), int32(4)); !ok || got != 3 {
		t.Errorf("[TestCheckedDivRem](rem 7%%4): got %d, %v, want 3, true", got, ok)
	}
	if _, ok := CheckedRem(uint16(9), uint16(0)); ok {
		t.Errorf("[TestCheckedDivRem](unsigned rem by zero): ok = true, want false")
	}
}

func TestCheckedNegAbs(t *testing.T) {
	if got, ok := CheckedNeg(int8(5)); !ok || got != -5 {
		t.Errorf("[TestCheckedNegAbs](neg 5): got %d, %v", got, ok)
	}
	if _, ok := CheckedNeg(int8(math.MinInt8)); ok {
		t.Errorf("[TestCheckedNegAbs](neg min): ok = true, want false")
	}
	if got, ok := CheckedNeg(uint8(0)); !ok || got != 0 {
		t.Errorf("[TestCheckedNegAbs](neg u0): got %d, %v", got, ok)
	}
	if _, ok := CheckedNeg(uint8(1)); ok {
		t.Errorf("[TestCheckedNegAbs](neg u1): ok = true, want false")
	}
	if got, ok := CheckedAbs(int8(-5)); !ok || got != 5 {
		t.Errorf("[TestCheckedNegAbs](abs -5): got %d, %v", got, ok)
	}
	if _, ok := CheckedAbs(int8(math.MinInt8)); ok {
		t.Errorf("[TestCheckedNegAbs](abs min): ok = true, want false")
	}
}

func testCheckedShift[T interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}](t *testing.T, name string, width uint) {
	t.Helper()

	for s := uint(0); s < width+8; s++ {
		_, ok := CheckedShl(T(1), s)
		if want := s < width; ok != want {
			t.Errorf("[TestCheckedShift](%s shl %d): ok = %v, want %v", name, s, ok, want)
		}
		_, ok = CheckedShr(T(1), s)
		if want := s < width; ok != want {
			t.Errorf("[TestCheckedShift](%s shr %d): ok = %v, want %v", name, s, ok, want)
		}
	}
	if got, _ := CheckedShl(T(1), 3); got != 8 {
		t.Errorf("[TestCheckedShift](%s shl value): got %d, want 8", name, got)
	}
}

func TestCheckedShift(t *testing.T) {
	testCheckedShift[int8](t, "int8", 8)
	testCheckedShift[uint8](t, "uint8", 8)
	testCheckedShift[int16](t, "int16", 16)
	testCheckedShift[uint16](t, "uint16", 16)
	testCheckedShift[int32](t, "int32", 32)
	testCheckedShift[uint32](t, "uint32", 32)
	testCheckedShift[int64](t, "int64", 64)
	testCheckedShift[uint64](t, "uint64", 64)
}

func TestWrapping(t *testing.T) {
	if got := WrappingAdd(int8(math.MaxInt8), 1); got != math.MinInt8 {
		t.Errorf("[TestWrapping](add): got %d, want %d", got, math.MinInt8)
	}
	if got := WrappingSub(uint8(0), 1); got != math.MaxUint8 {
		t.Errorf("[TestWrapping](sub): got %d, want %d", got, math.MaxUint8)
	}
	if got := WrappingMul(uint8(16), 16); got != 0 {
		t.Errorf("[TestWrapping](mul): got %d, want 0", got)
	}
	if got := WrappingNeg(int8(math.MinInt8)); got != math.MinInt8 {
		t.Errorf("[TestWrapping](neg min): got %d, want %d", got, math.MinInt8)
	}
	if got := WrappingNeg(uint8(1)); got != math.MaxUint8 {
		t.Errorf("[TestWrapping](neg u1): got %d, want %d", got, math.MaxUint8)
	}
	if got := WrappingShl(uint8(1), 8); got != 1 {
		t.Errorf("[TestWrapping](shl 8): got %d, want 1", got)
	}
	if got := WrappingShl(uint8(1), 9); got != 2 {
		t.Errorf("[TestWrapping](shl 9): got %d, want 2", got)
	}
	if got := WrappingShr(uint8(128), 9); got != 64 {
		t.Errorf("[TestWrapping](shr 9): got %d, want 64", got)
	}
	if got := WrappingDiv(int8(math.MinInt8), -1); got != math.MinInt8 {
		t.Errorf("[TestWrapping](div min): got %d, want %d", got, math.MinInt8)
	}
	if got := WrappingDiv(int8(100), 7); got != 14 {
		t.Errorf("[TestWrapping](div): got %d, want 14", got)
	}
	if got := WrappingRem(int8(math.MinInt8), -1); got != 0 {
		t.Errorf("[TestWrapping](rem min): got %d, want 0", got)
	}
}

func TestSaturating(t *testing.T) {
	if got := SaturatingAdd(uint8(math.MaxUint8), 1); got != math.MaxUint8 {
		t.Errorf("[TestSaturating](u8 add): got %d, want %d", got, math.MaxUint8)
	}
	if got := SaturatingAdd(int8(math.MaxInt8), 10); got != math.MaxInt8 {
		t.Errorf("[TestSaturating](i8 add): got %d, want %d", got, math.MaxInt8)
	}
	if got := SaturatingAdd(int8(math.MinInt8), -10); got != math.MinInt8 {
		t.Errorf("[TestSaturating](i8 add neg): got %d, want %d", got, math.MinInt8)
	}
	if got := SaturatingSub(uint8(3), 10); got != 0 {
		t.Errorf("[TestSaturating](u8 sub): got %d, want 0", got)
	}
	if got := SaturatingSub(int8(math.MinInt8), 1); got != math.MinInt8 {
		t.Errorf("[TestSaturating](i8 sub): got %d, want %d", got, math.MinInt8)
	}
	if got := SaturatingMul(int8(100), 2); got != math.MaxInt8 {
		t.Errorf("[TestSaturating](i8 mul): got %d, want %d", got, math.MaxInt8)
	}
	if got := SaturatingMul(int8(100), -2); got != math.MinInt8 {
		t.Errorf("[TestSaturating](i8 mul neg): got %d, want %d", got, math.MinInt8)
	}
	if got := SaturatingNeg(int8(math.MinInt8)); got != math.MaxInt8 {
		t.Errorf("[TestSaturating](i8 neg min): got %d, want %d", got, math.MaxInt8)
	}
	if got := SaturatingNeg(uint8(7)); got != 0 {
		t.Errorf("[TestSaturating](u8 neg): got %d, want 0", got)
	}
	if got := SaturatingDiv(int8(math.MinInt8), -1); got != math.MaxInt8 {
		t.Errorf("[TestSaturating](i8 div min): got %d, want %d", got, math.MaxInt8)
	}
	if got := SaturatingDiv(int8(-100), 3); got != -33 {
		t.Errorf("[TestSaturating](i8 div): got %d, want -33", got)
	}
	if got := SaturatingDiv(uint8(0), math.MaxUint8); got != 0 {
		t.Errorf("[TestSaturating](u8 div): got %d, want 0", got)
	}
}

func TestOverflowing(t *testing.T) {
	if got, over := OverflowingAdd(uint8(250), 10); !over || got != 4 {
		t.Errorf("[TestOverflowing](add wrap): got %d, %v, want 4, true", got, over)
	}
	if got, over := OverflowingAdd(uint8(250), 5); over || got != 255 {
		t.Errorf("[TestOverflowing](add fit): got %d, %v, want 255, false", got, over)
	}
	if got, over := OverflowingMul(int8(64), 2); !over || got != -128 {
		t.Errorf("[TestOverflowing](mul wrap): got %d, %v, want -128, true", got, over)
	}
	if got, over := OverflowingNeg(int8(math.MinInt8)); !over || got != math.MinInt8 {
		t.Errorf("[TestOverflowing](neg min): got %d, %v, want min, true", got, over)
	}
	if got, over := OverflowingDiv(int8(math.MinInt8), -1); !over || got != math.MinInt8 {
		t.Errorf("[TestOverflowing](div min): got %d, %v, want min, true", got, over)
	}
	if got, over := OverflowingDiv(int8(100), 7); over || got != 14 {
		t.Errorf("[TestOverflowing](div): got %d, %v, want 14, false", got, over)
	}
	if got, over := OverflowingRem(int8(math.MinInt8), -1); !over || got != 0 {
		t.Errorf("[TestOverflowing](rem min): got %d, %v, want 0, true", got, over)
	}
	if got, over := OverflowingShl(uint8(1), 9); !over || got != 2 {
		t.Errorf("[TestOverflowing](shl 9): got %d, %v, want 2, true", got, over)
	}
	if got, over := OverflowingShr(uint8(128), 7); over || got != 1 {
		t.Errorf("[TestOverflowing](shr 7): got %d, %v, want 1, false", got, over)
	}
}

func TestCheckedSumProduct(t *testing.T) {
	tests := []struct {
		name   string
		vs     []int8
		sum    int8
		sumOK  bool
		prod   int8
		prodOK bool
	}{
		{"empty", nil, 0, true, 1, true},
		{"small", []int8{1, 2, 3}, 6, true, 6, true},
		{"sum overflows", []int8{100, 100}, 0, false, 0, false},
		{"negatives", []int8{-4, 5, -6}, -5, true, 120, true},
	}

	for _, test := range tests {
		got, ok := CheckedSum(test.vs)
		if ok != test.sumOK || got != test.sum {
			t.Errorf("[TestCheckedSumProduct](%s sum): got %d, %v, want %d, %v", test.name, got, ok, test.sum, test.sumOK)
		}
		got, ok = CheckedProduct(test.vs)
		if ok != test.prodOK || got != test.prod {
			t.Errorf("[TestCheckedSumProduct](%s product): got %d, %v, want %d, %v", test.name, got, ok, test.prod, test.prodOK)
		}
	}
}
