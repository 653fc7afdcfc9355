package strbuf

import "testing"

func TestFind(t *testing.T) {
	s := FromString("aaaxaaayaaaz")

	tests := []struct {
		name   string
		find   func(match string, offset int) int
		match  string
		offset int
		want   int
	}{
		{"first any from 0", s.FindFirstOfAny, "xyz", 0, 3},
		{"first any from 4", s.FindFirstOfAny, "xyz", 4, 7},
		{"first any negative offset", s.FindFirstOfAny, "xyz", -5, 3},
		{"first any missing", s.FindFirstOfAny, "qrs", 0, NotFound},
		{"first any past end", s.FindFirstOfAny, "xyz", 12, NotFound},
		{"first all", s.FindFirstOfAll, "aaay", 0, 4},
		{"first all offset", s.FindFirstOfAll, "aa", 5, 5},
		{"first all missing", s.FindFirstOfAll, "xyz", 0, NotFound},
		{"first all empty", s.FindFirstOfAll, "", 0, NotFound},
		{"last any", s.FindLastOfAny, "xyz", 100, 11},
		{"last any offset", s.FindLastOfAny, "xyz", 10, 7},
		{"last any missing", s.FindLastOfAny, "q", 100, NotFound},
		{"last all", s.FindLastOfAll, "aaa", 100, 8},
		{"last all offset", s.FindLastOfAll, "aaa", 7, 4},
		{"last all empty", s.FindLastOfAll, "", 100, NotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.find(tc.match, tc.offset); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFindOnEmpty(t *testing.T) {
	s := New(nil, 0)
	if s.FindFirstOfAny("a", 0) != NotFound || s.FindLastOfAny("a", 0) != NotFound {
		t.Error("expected NotFound on empty string")
	}
	if s.FindFirstOfAll("a", 0) != NotFound || s.FindLastOfAll("a", 0) != NotFound {
		t.Error("expected NotFound on empty string")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input, pattern string
		want           int
	}{
		{"abcabcab", "abc", 2},
		{"aaaa", "aa", 2},
		{"abc", "", 0},
		{"abc", "d", 0},
	}
	for _, tc := range tests {
		if got := FromString(tc.input).Count(tc.pattern); got != tc.want {
			t.Errorf("Count(%q, %q) = %d, want %d", tc.input, tc.pattern, got, tc.want)
		}
	}
}
