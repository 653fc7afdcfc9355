// Package typeinfo describes element types for utl's generic containers.
//
// A TypeInfo bundles the operations a container needs to treat values
// uniformly: a name, the in-memory size, a three-way comparison, a hash,
// and a copy function. Containers such as set.Set use it to order, key and
// clone elements without knowing their internals.
//
// # Usage
//
//	s := set.New(set.HashSet, typeinfo.Int)
//	s.Insert(42)
package typeinfo
