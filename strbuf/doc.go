// Package strbuf implements String, a growable, mutable byte string.
//
// A String keeps its content in a single buffer that always has room for a
// trailing NUL byte; CString returns a NUL-terminated copy for C-style
// consumers. Capacity starts at InitialCapacity and grows by a factor
// of 1.5 until it exceeds the required length; it never shrinks on append
// or insert.
//
// # Ownership
//
// A String is owned by whoever holds the handle. Mutating methods may
// relocate the backing storage and return the handle, so calls chain and
// callers keep using the returned value:
//
//	s := strbuf.FromString("Hello")
//	s = s.AppendString(" World").Prepend([]byte(">> "), -1)
//
// Views returned by Bytes are invalidated by the next mutation.
//
// # Out-of-range arguments
//
// Indices and lengths are clamped into valid bounds, never rejected. Search
// methods report "no match" with NotFound. Using a nil or destroyed handle
// panics with ErrInvalidHandle.
//
// # Byte semantics
//
// All operations work on bytes. Match sets are sets of single bytes and
// case mapping is ASCII only. A String is not safe for concurrent use.
package strbuf
