package list

// Iter is a bidirectional cursor over a List. Structural changes to the list
// (insert or remove) invalidate it; Set through the cursor does not.
type Iter[T any] struct {
	list  *List[T]
	index int
	node  *node[T] // linked lists only
}

// IterFront returns a cursor on the first element.
func (l *List[T]) IterFront() *Iter[T] {
	it := &Iter[T]{list: l}
	if s, ok := l.store.(*linkedStore[T]); ok {
		it.node = s.sentinel.next
	}
	return it
}

// IterBack returns a cursor on the last element.
func (l *List[T]) IterBack() *Iter[T] {
	it := &Iter[T]{list: l, index: l.Len() - 1}
	if s, ok := l.store.(*linkedStore[T]); ok {
		it.node = s.sentinel.prev
	}
	return it
}

// Valid reports whether the cursor is on an element.
func (it *Iter[T]) Valid() bool {
	return it.index >= 0 && it.index < it.list.Len()
}

// HasNext reports whether an element follows the cursor.
func (it *Iter[T]) HasNext() bool {
	return it.index+1 < it.list.Len()
}

// HasPrev reports whether an element precedes the cursor.
func (it *Iter[T]) HasPrev() bool {
	return it.index > 0 && it.index <= it.list.Len()
}

// Next moves the cursor forward.
func (it *Iter[T]) Next() {
	it.index++
	if it.node != nil {
		it.node = it.node.next
	}
}

// Prev moves the cursor backward.
func (it *Iter[T]) Prev() {
	it.index--
	if it.node != nil {
		it.node = it.node.prev
	}
}

// Get returns the element under the cursor.
func (it *Iter[T]) Get() (T, bool) {
	var zero T
	if !it.Valid() {
		return zero, false
	}
	if it.node != nil {
		return it.node.value, true
	}
	return it.list.Get(it.index)
}

// Set replaces the element under the cursor.
func (it *Iter[T]) Set(v T) bool {
	if !it.Valid() {
		return false
	}
	if it.node != nil {
		it.node.value = v
		return true
	}
	return it.list.Set(it.index, v)
}
