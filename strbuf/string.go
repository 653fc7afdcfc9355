package strbuf

import (
	"bytes"
	"math"

	"github.com/kbukum/utl/errors"
)

// InitialCapacity is the smallest buffer a String allocates, terminator
// slot included.
const InitialCapacity = 64

// NotFound is returned by the search methods when nothing matches.
const NotFound = -1

// ErrInvalidHandle is the panic value for operations on a nil or destroyed
// String.
var ErrInvalidHandle = errors.InvalidHandle("string")

// String is a growable byte string. len(buf) is the capacity and
// buf[length] is always 0.
type String struct {
	buf    []byte
	length int
}

// growCapacity performs one growth step: capacity * 1.5.
func growCapacity(capacity int) int {
	return capacity + capacity>>1
}

// computeCapacity returns the capacity needed to hold minLength bytes plus
// the terminator, growing from current. Growth saturates at math.MaxInt.
func computeCapacity(minLength, current int) int {
	if minLength < InitialCapacity {
		return InitialCapacity
	}
	if current < InitialCapacity {
		current = InitialCapacity
	}
	for minLength >= current {
		next := growCapacity(current)
		if next <= current {
			return math.MaxInt
		}
		current = next
	}
	return current
}

// sourceLength resolves how many bytes of src an operation consumes.
// A nil src yields 0. A negative length means "up to the first NUL byte, or
// all of src". Lengths past the end of src are clamped.
func sourceLength(src []byte, length int) int {
	if src == nil {
		return 0
	}
	if length < 0 {
		if i := bytes.IndexByte(src, 0); i >= 0 {
			return i
		}
		return len(src)
	}
	if length > len(src) {
		return len(src)
	}
	return length
}

// New creates a String holding the first length bytes of src.
// A nil src creates an empty String; a negative length copies src up to its
// first NUL byte.
func New(src []byte, length int) *String {
	length = sourceLength(src, length)
	s := &String{buf: make([]byte, computeCapacity(length, 0))}
	s.length = copy(s.buf, src[:length])
	return s
}

// FromString creates a String holding all bytes of str.
func FromString(str string) *String {
	s := &String{buf: make([]byte, computeCapacity(len(str), 0))}
	s.length = copy(s.buf, str)
	return s
}

// Duplicate returns an independent copy of s.
func (s *String) Duplicate() *String {
	s.mustBeValid()
	return New(s.buf[:s.length], s.length)
}

// Destroy releases the buffer and returns nil. The handle must not be used
// afterwards; doing so, including a second Destroy, panics.
func (s *String) Destroy() *String {
	s.mustBeValid()
	s.buf = nil
	s.length = 0
	return nil
}

func (s *String) mustBeValid() {
	if s == nil || s.buf == nil {
		panic(ErrInvalidHandle)
	}
}

// Len returns the number of content bytes, terminator excluded.
func (s *String) Len() int {
	s.mustBeValid()
	return s.length
}

// Cap returns the buffer capacity, terminator slot included.
func (s *String) Cap() int {
	s.mustBeValid()
	return len(s.buf)
}

// At returns the byte at index i. At(Len()) returns the terminator.
func (s *String) At(i int) byte {
	s.mustBeValid()
	if i < 0 || i > s.length {
		panic(errors.InvalidInput("index", "index out of range").
			WithDetail("index", i).WithDetail("length", s.length))
	}
	return s.buf[i]
}

// Bytes returns the content without the terminator. The slice aliases the
// buffer and is only valid until the next mutation.
func (s *String) Bytes() []byte {
	s.mustBeValid()
	return s.buf[:s.length:s.length]
}

// CString returns a copy of the content followed by a NUL byte.
func (s *String) CString() []byte {
	s.mustBeValid()
	return bytes.Clone(s.buf[:s.length+1])
}

// String returns the content as a Go string.
func (s *String) String() string {
	s.mustBeValid()
	return string(s.buf[:s.length])
}

// Reserve makes sure s can hold minLength content bytes without relocating.
// Content and length are unchanged; only the capacity may grow. A capacity
// that cannot be allocated panics like make does.
func (s *String) Reserve(minLength int) *String {
	s.mustBeValid()
	if minLength < len(s.buf) {
		return s
	}

	oldCapacity := len(s.buf)
	buf := make([]byte, computeCapacity(minLength, oldCapacity))
	copy(buf, s.buf[:s.length+1])
	s.buf = buf

	recordRelocation(oldCapacity, len(buf), s.length)
	return s
}

// Clear empties s but keeps its capacity.
func (s *String) Clear() *String {
	s.mustBeValid()
	s.length = 0
	s.buf[0] = 0
	return s
}
