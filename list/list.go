package list

import (
	"iter"

	"github.com/kbukum/utl/errors"
	"github.com/kbukum/utl/typeinfo"
)

// Kind selects the backing store of a List.
type Kind int

const (
	// Array stores elements in a contiguous slice.
	Array Kind = iota
	// Linked stores elements in doubly linked nodes.
	Linked
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Array:
		return "array"
	case Linked:
		return "linked"
	default:
		return "unknown"
	}
}

// InitialCapacity is the starting capacity of an array-backed list.
const InitialCapacity = 64

// NotFound is returned by IndexOf when no element matches.
const NotFound = -1

// ErrNoTypeInfo is the panic value for equality lookups on a list created
// without a TypeInfo.
var ErrNoTypeInfo = errors.New(errors.ErrCodeInvalidInput, "list has no type info")

// List is an ordered sequence of T.
type List[T any] struct {
	info  typeinfo.TypeInfo[T]
	store store[T]
}

// New creates an empty list of the given kind. info may be nil when
// IndexOf, Contains and Clone are not used.
func New[T any](kind Kind, info typeinfo.TypeInfo[T]) *List[T] {
	l := &List[T]{info: info}
	switch kind {
	case Linked:
		l.store = newLinkedStore[T]()
	default:
		l.store = &arrayStore[T]{items: make([]T, 0, InitialCapacity)}
	}
	return l
}

// Kind returns the backing store kind.
func (l *List[T]) Kind() Kind {
	switch l.store.(type) {
	case *linkedStore[T]:
		return Linked
	default:
		return Array
	}
}

// Info returns the type info the list was created with.
func (l *List[T]) Info() typeinfo.TypeInfo[T] { return l.info }

// Len returns the number of elements.
func (l *List[T]) Len() int {
	switch s := l.store.(type) {
	case *arrayStore[T]:
		return len(s.items)
	case *linkedStore[T]:
		return s.count
	}
	return 0
}

// Get returns the element at index at.
func (l *List[T]) Get(at int) (T, bool) {
	var zero T
	if at < 0 || at >= l.Len() {
		return zero, false
	}
	switch s := l.store.(type) {
	case *arrayStore[T]:
		return s.items[at], true
	case *linkedStore[T]:
		return s.nodeAt(at).value, true
	}
	return zero, false
}

// Set replaces the element at index at. It reports false when at is out of
// range.
func (l *List[T]) Set(at int, v T) bool {
	if at < 0 || at >= l.Len() {
		return false
	}
	switch s := l.store.(type) {
	case *arrayStore[T]:
		s.items[at] = v
	case *linkedStore[T]:
		s.nodeAt(at).value = v
	}
	return true
}

// Front returns the first element.
func (l *List[T]) Front() (T, bool) { return l.Get(0) }

// Back returns the last element.
func (l *List[T]) Back() (T, bool) { return l.Get(l.Len() - 1) }

// Insert inserts v before index at. at is clamped into [0, Len()].
func (l *List[T]) Insert(at int, v T) {
	at = min(max(at, 0), l.Len())
	switch s := l.store.(type) {
	case *arrayStore[T]:
		s.insert(at, v)
	case *linkedStore[T]:
		if at == s.count {
			s.linkBefore(&s.sentinel, v)
		} else {
			s.linkBefore(s.nodeAt(at), v)
		}
	}
}

// PushBack appends v.
func (l *List[T]) PushBack(v T) { l.Insert(l.Len(), v) }

// PushFront prepends v.
func (l *List[T]) PushFront(v T) { l.Insert(0, v) }

// RemoveAt removes and returns the element at index at.
func (l *List[T]) RemoveAt(at int) (T, bool) {
	var zero T
	if at < 0 || at >= l.Len() {
		return zero, false
	}
	switch s := l.store.(type) {
	case *arrayStore[T]:
		return s.remove(at), true
	case *linkedStore[T]:
		return s.unlink(s.nodeAt(at)), true
	}
	return zero, false
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, bool) { return l.RemoveAt(0) }

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, bool) { return l.RemoveAt(l.Len() - 1) }

// Clear removes all elements. An array-backed list keeps its capacity.
func (l *List[T]) Clear() {
	switch s := l.store.(type) {
	case *arrayStore[T]:
		clear(s.items)
		s.items = s.items[:0]
	case *linkedStore[T]:
		s.reset()
	}
}

// IndexOf returns the index of the first element equal to v, or NotFound.
// It panics with ErrNoTypeInfo when the list has no type info.
func (l *List[T]) IndexOf(v T) int {
	if l.info == nil {
		panic(ErrNoTypeInfo)
	}
	i := 0
	for e := range l.All() {
		if typeinfo.Equal(l.info, e, v) {
			return i
		}
		i++
	}
	return NotFound
}

// Contains reports whether an element equal to v is present.
func (l *List[T]) Contains(v T) bool { return l.IndexOf(v) != NotFound }

// Clone returns a list of the same kind holding copies made by the type
// info, or plain assignments when the list has none.
func (l *List[T]) Clone() *List[T] {
	out := New(l.Kind(), l.info)
	for v := range l.All() {
		if l.info != nil {
			v = l.info.Copy(v)
		}
		out.PushBack(v)
	}
	return out
}

// All iterates over the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		switch s := l.store.(type) {
		case *arrayStore[T]:
			for _, v := range s.items {
				if !yield(v) {
					return
				}
			}
		case *linkedStore[T]:
			for n := s.sentinel.next; n != &s.sentinel; n = n.next {
				if !yield(n.value) {
					return
				}
			}
		}
	}
}

// Slice returns the elements as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Fold reduces l front to back, starting from init.
func Fold[T, A any](l *List[T], init A, fn func(acc A, v T) A) A {
	acc := init
	for v := range l.All() {
		acc = fn(acc, v)
	}
	return acc
}
