package set

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/utl/strbuf"
	"github.com/kbukum/utl/typeinfo"
)

var kinds = []Kind{ArraySet, HashSet}

func sorted(s *Set[int]) []int {
	out := slices.Collect(s.All())
	slices.Sort(out)
	return out
}

func fromInts(kind Kind, vs ...int) *Set[int] {
	s := New(kind, typeinfo.Int)
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

func TestInsertContainsRemove(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := New(kind, typeinfo.Int)
			if !s.Insert(1) || !s.Insert(2) {
				t.Fatal("expected new elements to be added")
			}
			if s.Insert(1) {
				t.Error("expected duplicate insert to report false")
			}
			if s.Len() != 2 {
				t.Errorf("expected 2 elements, got %d", s.Len())
			}
			if !s.Contains(2) || s.Contains(3) {
				t.Error("unexpected membership")
			}
			if !s.Remove(1) || s.Remove(1) {
				t.Error("expected exactly one successful remove")
			}
			if s.Len() != 1 || s.Kind() != kind {
				t.Errorf("expected one %v element, got %d of %v", kind, s.Len(), s.Kind())
			}
			s.Clear()
			if s.Len() != 0 || s.Contains(2) {
				t.Error("expected empty set after Clear")
			}
		})
	}
}

func TestHashSetGrowth(t *testing.T) {
	s := New(HashSet, typeinfo.Int)
	for i := -500; i < 500; i++ {
		s.Insert(i)
	}
	if s.Len() != 1000 {
		t.Fatalf("expected 1000 elements, got %d", s.Len())
	}
	st := s.store.(*hashStore[int])
	if float64(st.count) > maxLoadFactor*float64(len(st.buckets)) {
		t.Errorf("load factor exceeded: %d elements in %d buckets", st.count, len(st.buckets))
	}
	for i := -500; i < 500; i++ {
		if !s.Contains(i) {
			t.Fatalf("lost element %d after rehash", i)
		}
	}
}

func TestSetAlgebra(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			union := fromInts(kind, 1, 2, 3).Union(fromInts(kind, 3, 4))
			if diff := cmp.Diff([]int{1, 2, 3, 4}, sorted(union)); diff != "" {
				t.Errorf("union (-want +got):\n%s", diff)
			}

			inter := fromInts(kind, 1, 2, 3).Intersection(fromInts(kind, 2, 3, 4))
			if diff := cmp.Diff([]int{2, 3}, sorted(inter)); diff != "" {
				t.Errorf("intersection (-want +got):\n%s", diff)
			}

			diff := fromInts(kind, 1, 2, 3).Difference(fromInts(kind, 2))
			if d := cmp.Diff([]int{1, 3}, sorted(diff)); d != "" {
				t.Errorf("difference (-want +got):\n%s", d)
			}
		})
	}
}

func TestArraySetOrder(t *testing.T) {
	s := fromInts(ArraySet, 3, 1, 2, 1)
	if diff := cmp.Diff([]int{3, 1, 2}, slices.Collect(s.All())); diff != "" {
		t.Errorf("insertion order (-want +got):\n%s", diff)
	}
}

func TestStringSet(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			words := New(kind, strbuf.TypeInfo)
			n := strbuf.FromString("to be or not to be").SplitOnAny(" ", false, func(w *strbuf.String) {
				words.Insert(w)
			})
			if n != 6 {
				t.Fatalf("expected 6 words, got %d", n)
			}
			if words.Len() != 4 {
				t.Errorf("expected 4 distinct words, got %d", words.Len())
			}
			if !words.Contains(strbuf.FromString("not")) {
				t.Error("expected set to contain \"not\"")
			}

			other := New(kind, strbuf.TypeInfo)
			other.Insert(strbuf.FromString("question"))
			words.Union(other)
			other.Clear()
			if !words.Contains(strbuf.FromString("question")) {
				t.Error("expected union to keep its own copy")
			}
		})
	}
}

func TestNewWithoutInfo(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNoTypeInfo {
			t.Errorf("expected ErrNoTypeInfo panic, got %v", r)
		}
	}()
	New[int](HashSet, nil)
}
