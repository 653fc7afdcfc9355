package set

import (
	"iter"
	"slices"

	"github.com/kbukum/utl/errors"
	"github.com/kbukum/utl/typeinfo"
)

// Kind selects the backing store of a Set.
type Kind int

const (
	// ArraySet keeps elements in insertion order and searches linearly.
	ArraySet Kind = iota
	// HashSet keeps elements in hash buckets.
	HashSet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ArraySet:
		return "array"
	case HashSet:
		return "hash"
	default:
		return "unknown"
	}
}

// ErrNoTypeInfo is the panic value for New without a TypeInfo.
var ErrNoTypeInfo = errors.New(errors.ErrCodeInvalidInput, "set requires type info")

// Set is a collection of distinct T values.
type Set[T any] struct {
	info  typeinfo.TypeInfo[T]
	store store[T]
}

// New creates an empty set. It panics with ErrNoTypeInfo when info is nil.
func New[T any](kind Kind, info typeinfo.TypeInfo[T]) *Set[T] {
	if info == nil {
		panic(ErrNoTypeInfo)
	}
	s := &Set[T]{info: info}
	switch kind {
	case HashSet:
		s.store = newHashStore(info)
	default:
		s.store = &arrayStore[T]{info: info}
	}
	return s
}

// Kind returns the backing store kind.
func (s *Set[T]) Kind() Kind {
	if _, ok := s.store.(*hashStore[T]); ok {
		return HashSet
	}
	return ArraySet
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	switch st := s.store.(type) {
	case *arrayStore[T]:
		return len(st.items)
	case *hashStore[T]:
		return st.count
	}
	return 0
}

// Contains reports whether an element equal to v is present.
func (s *Set[T]) Contains(v T) bool {
	switch st := s.store.(type) {
	case *arrayStore[T]:
		return st.indexOf(v) >= 0
	case *hashStore[T]:
		_, i := st.find(v)
		return i >= 0
	}
	return false
}

// Insert adds v and reports whether it was absent. v is stored as given.
func (s *Set[T]) Insert(v T) bool {
	switch st := s.store.(type) {
	case *arrayStore[T]:
		if st.indexOf(v) >= 0 {
			return false
		}
		st.items = append(st.items, v)
	case *hashStore[T]:
		if _, i := st.find(v); i >= 0 {
			return false
		}
		st.add(v)
	}
	return true
}

// Remove deletes the element equal to v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	switch st := s.store.(type) {
	case *arrayStore[T]:
		i := st.indexOf(v)
		if i < 0 {
			return false
		}
		st.items = slices.Delete(st.items, i, i+1)
	case *hashStore[T]:
		b, i := st.find(v)
		if i < 0 {
			return false
		}
		bucket := st.buckets[b]
		bucket[i] = bucket[len(bucket)-1]
		st.buckets[b] = bucket[:len(bucket)-1]
		st.count--
	}
	return true
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	switch st := s.store.(type) {
	case *arrayStore[T]:
		st.items = st.items[:0]
	case *hashStore[T]:
		for i := range st.buckets {
			st.buckets[i] = nil
		}
		st.count = 0
	}
}

// All iterates over the elements. An ArraySet yields them in insertion
// order; a HashSet in bucket order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		switch st := s.store.(type) {
		case *arrayStore[T]:
			for _, v := range st.items {
				if !yield(v) {
					return
				}
			}
		case *hashStore[T]:
			for _, bucket := range st.buckets {
				for _, v := range bucket {
					if !yield(v) {
						return
					}
				}
			}
		}
	}
}

// Union adds copies of the elements of other that s lacks.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	for v := range other.All() {
		if !s.Contains(v) {
			s.Insert(s.info.Copy(v))
		}
	}
	return s
}

// Intersection removes the elements of s that other lacks.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	return s.retain(func(v T) bool { return other.Contains(v) })
}

// Difference removes the elements of s that other holds.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	return s.retain(func(v T) bool { return !other.Contains(v) })
}

func (s *Set[T]) retain(keep func(v T) bool) *Set[T] {
	var drop []T
	for v := range s.All() {
		if !keep(v) {
			drop = append(drop, v)
		}
	}
	for _, v := range drop {
		s.Remove(v)
	}
	return s
}
