package strbuf

import (
	"bytes"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/kbukum/utl/typeinfo"
)

// Compare compares a and b byte by byte and returns -1, 0 or +1.
func Compare(a, b *String) int {
	a.mustBeValid()
	b.mustBeValid()
	return bytes.Compare(a.buf[:a.length], b.buf[:b.length])
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b *String) bool {
	a.mustBeValid()
	b.mustBeValid()
	return bytes.Equal(a.buf[:a.length], b.buf[:b.length])
}

// Hash returns the xxhash64 of the content.
func (s *String) Hash() uint64 {
	s.mustBeValid()
	return xxhash.Sum64(s.buf[:s.length])
}

// TypeInfo describes *String for the generic containers.
var TypeInfo typeinfo.TypeInfo[*String] = typeinfo.Funcs[*String]{
	TypeName:    "UTL_String",
	SizeBytes:   unsafe.Sizeof(String{}),
	CompareFunc: Compare,
	HashFunc:    (*String).Hash,
	CopyFunc:    (*String).Duplicate,
}
