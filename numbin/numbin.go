// Package numbin converts numeric values to and from their byte
// representations in big-endian, little-endian and native order. Floats
// travel as their IEEE-754 bit patterns. The From* functions panic when the
// slice length does not match the type's byte width; that is a programmer
// error, not a data error.
package numbin

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/bearlytools/num/internal/meta"
	"github.com/bearlytools/num/types"
)

// BigEndian returns v's representation in big-endian byte order.
func BigEndian[T types.Numeric](v T) []byte {
	n := meta.Bytes[T]()
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], meta.Pattern(v))
	out := make([]byte, n)
	copy(out, tmp[8-n:])
	return out
}

// LittleEndian returns v's representation in little-endian byte order.
func LittleEndian[T types.Numeric](v T) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], meta.Pattern(v))
	out := make([]byte, meta.Bytes[T]())
	copy(out, tmp[:])
	return out
}

// Native returns a copy of v's in-memory representation in the platform's
// byte order.
func Native[T types.Numeric](v T) []byte {
	n := meta.Bytes[T]()
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&v)), n))
	return out
}

// FromBigEndian rebuilds a T from its big-endian representation. len(b)
// must equal the byte width of T or this panics.
func FromBigEndian[T types.Numeric](b []byte) T {
	n := mustLen[T](b)
	var tmp [8]byte
	copy(tmp[8-n:], b)
	return meta.FromPattern[T](binary.BigEndian.Uint64(tmp[:]))
}

// FromLittleEndian rebuilds a T from its little-endian representation.
// len(b) must equal the byte width of T or this panics.
func FromLittleEndian[T types.Numeric](b []byte) T {
	mustLen[T](b)
	var tmp [8]byte
	copy(tmp[:], b)
	return meta.FromPattern[T](binary.LittleEndian.Uint64(tmp[:]))
}

// FromNative rebuilds a T from its native-order representation. len(b)
// must equal the byte width of T or this panics.
func FromNative[T types.Numeric](b []byte) T {
	n := mustLen[T](b)
	var v T
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), n), b)
	return v
}

func mustLen[T types.Numeric](b []byte) uint {
	n := meta.Bytes[T]()
	if uint(len(b)) != n {
		var z T
		panic(fmt.Sprintf("numbin: %T needs %d bytes, got %d", z, n, len(b)))
	}
	return n
}
