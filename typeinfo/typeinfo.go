package typeinfo

import (
	"cmp"
	"math"
	"unsafe"
)

// TypeInfo describes how a container handles values of type T.
type TypeInfo[T any] interface {
	// Name is a human-readable type name.
	Name() string
	// Size is the in-memory size of a T in bytes.
	Size() uintptr
	// Compare returns a negative value, zero or a positive value when a is
	// less than, equal to or greater than b.
	Compare(a, b T) int
	// Hash returns a hash that is equal for values that compare equal.
	Hash(v T) uint64
	// Copy returns an independently owned copy of v.
	Copy(v T) T
}

// Funcs implements TypeInfo from plain functions.
// A nil CopyFunc copies by assignment. A zero SizeBytes reports the size
// of T itself.
type Funcs[T any] struct {
	TypeName    string
	SizeBytes   uintptr
	CompareFunc func(a, b T) int
	HashFunc    func(v T) uint64
	CopyFunc    func(v T) T
}

// Name returns the configured type name.
func (f Funcs[T]) Name() string { return f.TypeName }

// Size returns SizeBytes, or the size of T in bytes.
func (f Funcs[T]) Size() uintptr {
	if f.SizeBytes != 0 {
		return f.SizeBytes
	}
	return SizeOf[T]()
}

// Compare calls CompareFunc.
func (f Funcs[T]) Compare(a, b T) int { return f.CompareFunc(a, b) }

// Hash calls HashFunc.
func (f Funcs[T]) Hash(v T) uint64 { return f.HashFunc(v) }

// Copy calls CopyFunc, or returns v when no CopyFunc is set.
func (f Funcs[T]) Copy(v T) T {
	if f.CopyFunc == nil {
		return v
	}
	return f.CopyFunc(v)
}

// SizeOf returns the in-memory size of T.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Equal reports whether info considers a and b equal.
func Equal[T any](info TypeInfo[T], a, b T) bool {
	return info.Compare(a, b) == 0
}

// Int describes int values. The hash is the value itself.
var Int TypeInfo[int] = Funcs[int]{
	TypeName:    "int",
	CompareFunc: cmp.Compare[int],
	HashFunc:    func(v int) uint64 { return uint64(v) },
}

// Float32 describes float32 values. The hash is the IEEE-754 bit pattern,
// with negative zero folded onto zero so equal values hash equally.
var Float32 TypeInfo[float32] = Funcs[float32]{
	TypeName:    "float",
	CompareFunc: cmp.Compare[float32],
	HashFunc: func(v float32) uint64 {
		if v == 0 {
			return 0
		}
		return uint64(math.Float32bits(v))
	},
}

// Byte describes single byte characters.
var Byte TypeInfo[byte] = Funcs[byte]{
	TypeName:    "char",
	CompareFunc: cmp.Compare[byte],
	HashFunc:    func(v byte) uint64 { return uint64(v) },
}
