// Package set provides a generic set backed either by an insertion-ordered
// array or by a hash table. Equality and hashing come from a
// typeinfo.TypeInfo, so any element type with a descriptor can be stored,
// including *strbuf.String through strbuf.TypeInfo.
package set
