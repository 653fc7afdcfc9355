package strbuf

import (
	"bytes"
	"math"
	"testing"
)

func expectInvalidHandle(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != ErrInvalidHandle {
			t.Errorf("expected panic with ErrInvalidHandle, got %v", r)
		}
	}()
	fn()
}

func TestNewNil(t *testing.T) {
	s := New(nil, -1)
	if s.Len() != 0 {
		t.Errorf("expected length 0, got %d", s.Len())
	}
	if s.Cap() < InitialCapacity {
		t.Errorf("expected capacity >= %d, got %d", InitialCapacity, s.Cap())
	}
	if s.At(0) != 0 {
		t.Error("expected terminator at index 0")
	}
	if !bytes.Equal(s.CString(), []byte{0}) {
		t.Errorf("expected empty C string, got %q", s.CString())
	}
}

func TestNewTerminatorScan(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want string
	}{
		{"no NUL", []byte("Hello World"), "Hello World"},
		{"stops at NUL", []byte("abc\x00def"), "abc"},
		{"empty", []byte{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.src, -1)
			if s.String() != tc.want {
				t.Errorf("got %q, want %q", s.String(), tc.want)
			}
			if s.Len() != len(tc.want) {
				t.Errorf("expected length %d, got %d", len(tc.want), s.Len())
			}
		})
	}
}

func TestNewTruncates(t *testing.T) {
	src := []byte("Hello World")
	for n := 0; n <= len(src); n++ {
		s := New(src, n)
		if s.String() != string(src[:n]) {
			t.Errorf("New(src, %d) = %q, want %q", n, s.String(), src[:n])
		}
	}

	if s := New(src, 100); s.String() != "Hello World" {
		t.Errorf("expected length past the source to be clamped, got %q", s.String())
	}
}

func TestFromString(t *testing.T) {
	s := FromString("a\x00b")
	if s.Len() != 3 {
		t.Errorf("expected embedded NUL to be kept, got length %d", s.Len())
	}
	if s.At(3) != 0 {
		t.Error("expected terminator after content")
	}
}

func TestDuplicateIndependent(t *testing.T) {
	orig := FromString("Hello")
	dup := orig.Duplicate()
	if dup == orig {
		t.Fatal("expected a distinct handle")
	}
	if !Equal(orig, dup) {
		t.Errorf("expected equal content, got %q and %q", orig, dup)
	}

	dup.AppendString(" World").ToUpper()
	if orig.String() != "Hello" {
		t.Errorf("original changed to %q", orig.String())
	}
	if dup.String() != "HELLO WORLD" {
		t.Errorf("got %q, want %q", dup.String(), "HELLO WORLD")
	}
}

func TestDestroy(t *testing.T) {
	s := FromString("gone")
	if got := s.Destroy(); got != nil {
		t.Error("expected Destroy to return nil")
	}

	expectInvalidHandle(t, func() { s.Len() })
	expectInvalidHandle(t, func() { s.AppendString("x") })
	expectInvalidHandle(t, func() { s.Destroy() })

	var nilString *String
	expectInvalidHandle(t, func() { nilString.String() })
}

func TestAtOutOfRange(t *testing.T) {
	s := FromString("abc")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out of range index")
		}
	}()
	s.At(4)
}

func TestCapacityGrowth(t *testing.T) {
	s := New(nil, 0)
	if s.Cap() != 64 {
		t.Fatalf("expected initial capacity 64, got %d", s.Cap())
	}

	steps := []struct {
		reserve int
		want    int
	}{
		{10, 64},
		{63, 64},
		{64, 96},
		{96, 144},
		{200, 216},
		{100, 216},
	}
	for _, step := range steps {
		s.Reserve(step.reserve)
		if s.Cap() != step.want {
			t.Errorf("Reserve(%d): expected capacity %d, got %d", step.reserve, step.want, s.Cap())
		}
	}
}

func TestComputeCapacitySaturates(t *testing.T) {
	if got := computeCapacity(math.MaxInt/2, 64); got <= math.MaxInt/2 {
		t.Errorf("computeCapacity(MaxInt/2) = %d, want more than MaxInt/2", got)
	}
	for _, minLength := range []int{math.MaxInt - 1, math.MaxInt} {
		if got := computeCapacity(minLength, 64); got != math.MaxInt {
			t.Errorf("computeCapacity(%d) = %d, want MaxInt", minLength, got)
		}
	}
}

func TestReserveHugePanics(t *testing.T) {
	s := FromString("x")
	defer func() {
		if recover() == nil {
			t.Error("expected Reserve(math.MaxInt) to panic")
		}
	}()
	s.Reserve(math.MaxInt)
}

func TestReserveIdempotent(t *testing.T) {
	s := FromString("content")
	s.Reserve(500)
	first := s.Cap()
	s.Reserve(500)
	if s.Cap() != first {
		t.Errorf("expected capacity %d after second Reserve, got %d", first, s.Cap())
	}
	if s.String() != "content" {
		t.Errorf("expected content to survive Reserve, got %q", s.String())
	}
	if s.At(s.Len()) != 0 {
		t.Error("expected terminator to survive Reserve")
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	s := FromString("some content").Reserve(300)
	capacity := s.Cap()
	s.Clear()
	if s.Len() != 0 || s.Cap() != capacity {
		t.Errorf("expected length 0 and capacity %d, got %d and %d", capacity, s.Len(), s.Cap())
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		at     int
		src    []byte
		length int
		want   string
	}{
		{"middle", "Hello World", 5, []byte(","), 1, "Hello, World"},
		{"front", "World", 0, []byte("Hello "), -1, "Hello World"},
		{"end", "Hello", 5, []byte(" World"), -1, "Hello World"},
		{"clamp negative at", "b", -3, []byte("a"), 1, "ab"},
		{"clamp large at", "a", 99, []byte("b"), 1, "ab"},
		{"nil source", "abc", 1, nil, 5, "abc"},
		{"partial source", "ad", 1, []byte("bcXYZ"), 2, "abcd"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := FromString(tc.start).Insert(tc.at, tc.src, tc.length)
			if s.String() != tc.want {
				t.Errorf("got %q, want %q", s.String(), tc.want)
			}
			if s.At(s.Len()) != 0 {
				t.Error("expected terminator after content")
			}
		})
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	const orig = "The quick brown fox"
	x := []byte("jumps over")
	for at := 0; at <= len(orig); at++ {
		s := FromString(orig)
		s.Insert(at, x, len(x)).RemoveAt(at, len(x))
		if s.String() != orig || s.Len() != len(orig) {
			t.Errorf("at %d: got %q, want %q", at, s.String(), orig)
		}
	}
}

func TestAppendAssociative(t *testing.T) {
	x := bytes.Repeat([]byte("x"), 50)
	y := bytes.Repeat([]byte("y"), 70)

	a := New(nil, 0).Append(x, len(x)).Append(y, len(y))
	xy := append(append([]byte(nil), x...), y...)
	b := New(nil, 0).Append(xy, len(xy))

	if !Equal(a, b) {
		t.Errorf("expected equal content, got %q and %q", a, b)
	}
}

func TestAppendGrowth(t *testing.T) {
	s := New(nil, 0)
	for i := 0; i < 1000; i++ {
		s.AppendString("ab")
		if s.Len() >= s.Cap() {
			t.Fatalf("length %d reached capacity %d", s.Len(), s.Cap())
		}
	}
	if s.Len() != 2000 {
		t.Errorf("expected length 2000, got %d", s.Len())
	}
}

func TestPrependAndConcat(t *testing.T) {
	s := FromString("World").PrependString("Hello ")
	if s.String() != "Hello World" {
		t.Errorf("got %q, want %q", s.String(), "Hello World")
	}

	s.Concat(FromString("!"))
	if s.String() != "Hello World!" {
		t.Errorf("got %q, want %q", s.String(), "Hello World!")
	}

	self := FromString("ab")
	self.Concat(self)
	if self.String() != "abab" {
		t.Errorf("self concat: got %q, want %q", self.String(), "abab")
	}
}

func TestBytesAliases(t *testing.T) {
	s := FromString("abc")
	b := s.Bytes()
	if len(b) != 3 || cap(b) != 3 {
		t.Errorf("expected len and cap 3, got %d and %d", len(b), cap(b))
	}
	if string(b) != "abc" {
		t.Errorf("got %q", b)
	}
}

func TestCStringIsCopy(t *testing.T) {
	s := FromString("abc")
	c := s.CString()
	if !bytes.Equal(c, []byte("abc\x00")) {
		t.Fatalf("expected NUL-terminated content, got %q", c)
	}
	c[0] = 'X'
	if s.String() != "abc" {
		t.Errorf("expected CString to return a copy, string changed to %q", s.String())
	}
}
