// Package list provides a generic list with two interchangeable backing
// stores: a growable array and a doubly linked ring with a sentinel node.
//
// Both stores expose the same operations through List. Element equality for
// IndexOf and Contains comes from a typeinfo.TypeInfo supplied at creation.
//
// Storing values or pointers is a choice of T:
//
//	ints := list.New(list.Array, typeinfo.Int)
//	strs := list.New(list.Linked, strbuf.TypeInfo) // List[*strbuf.String]
//
// A List is not safe for concurrent use.
package list
