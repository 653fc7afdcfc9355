package list

// store is implemented only by arrayStore and linkedStore.
type store[T any] interface {
	isStore()
}

type arrayStore[T any] struct {
	items []T
}

func (*arrayStore[T]) isStore() {}

func (s *arrayStore[T]) insert(at int, v T) {
	if len(s.items) == cap(s.items) {
		grown := make([]T, len(s.items), cap(s.items)+cap(s.items)>>1+1)
		copy(grown, s.items)
		s.items = grown
	}
	s.items = s.items[:len(s.items)+1]
	copy(s.items[at+1:], s.items[at:])
	s.items[at] = v
}

func (s *arrayStore[T]) remove(at int) T {
	v := s.items[at]
	copy(s.items[at:], s.items[at+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return v
}

type node[T any] struct {
	next, prev *node[T]
	value      T
}

// linkedStore is a ring through sentinel. An empty store has the sentinel
// pointing at itself.
type linkedStore[T any] struct {
	sentinel node[T]
	count    int
}

func (*linkedStore[T]) isStore() {}

func newLinkedStore[T any]() *linkedStore[T] {
	s := &linkedStore[T]{}
	s.reset()
	return s
}

func (s *linkedStore[T]) reset() {
	s.sentinel.next = &s.sentinel
	s.sentinel.prev = &s.sentinel
	s.count = 0
}

// nodeAt walks from the nearer end. at must be in range.
func (s *linkedStore[T]) nodeAt(at int) *node[T] {
	if at < s.count/2 {
		n := s.sentinel.next
		for ; at > 0; at-- {
			n = n.next
		}
		return n
	}
	n := s.sentinel.prev
	for i := s.count - 1; i > at; i-- {
		n = n.prev
	}
	return n
}

func (s *linkedStore[T]) linkBefore(mark *node[T], v T) *node[T] {
	n := &node[T]{value: v, next: mark, prev: mark.prev}
	mark.prev.next = n
	mark.prev = n
	s.count++
	return n
}

func (s *linkedStore[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = nil, nil
	s.count--
	return n.value
}
