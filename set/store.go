package set

import "github.com/kbukum/utl/typeinfo"

const (
	initialBuckets = 16
	maxLoadFactor  = 0.75
)

// store is implemented only by arrayStore and hashStore.
type store[T any] interface {
	isStore()
}

type arrayStore[T any] struct {
	info  typeinfo.TypeInfo[T]
	items []T
}

func (*arrayStore[T]) isStore() {}

func (st *arrayStore[T]) indexOf(v T) int {
	for i, e := range st.items {
		if st.info.Compare(e, v) == 0 {
			return i
		}
	}
	return -1
}

type hashStore[T any] struct {
	info    typeinfo.TypeInfo[T]
	buckets [][]T
	count   int
}

func (*hashStore[T]) isStore() {}

func newHashStore[T any](info typeinfo.TypeInfo[T]) *hashStore[T] {
	return &hashStore[T]{info: info, buckets: make([][]T, initialBuckets)}
}

func (st *hashStore[T]) bucketOf(v T, n int) int {
	return int(st.info.Hash(v) % uint64(n))
}

// find returns the bucket of v and its position there, or -1.
func (st *hashStore[T]) find(v T) (int, int) {
	b := st.bucketOf(v, len(st.buckets))
	for i, e := range st.buckets[b] {
		if st.info.Compare(e, v) == 0 {
			return b, i
		}
	}
	return b, -1
}

func (st *hashStore[T]) add(v T) {
	if float64(st.count+1) > maxLoadFactor*float64(len(st.buckets)) {
		st.rehash(len(st.buckets) + len(st.buckets)>>1)
	}
	b := st.bucketOf(v, len(st.buckets))
	st.buckets[b] = append(st.buckets[b], v)
	st.count++
}

func (st *hashStore[T]) rehash(n int) {
	buckets := make([][]T, n)
	for _, bucket := range st.buckets {
		for _, v := range bucket {
			b := st.bucketOf(v, n)
			buckets[b] = append(buckets[b], v)
		}
	}
	st.buckets = buckets
}
