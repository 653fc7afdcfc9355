package strbuf

import "strings"

// inSet reports whether c is one of the bytes of match.
func inSet(match string, c byte) bool {
	return strings.IndexByte(match, c) >= 0
}

// FindFirstOfAny returns the index of the first byte at or after offset that
// is in match, or NotFound. A negative offset starts at 0.
func (s *String) FindFirstOfAny(match string, offset int) int {
	s.mustBeValid()
	for i := max(offset, 0); i < s.length; i++ {
		if inSet(match, s.buf[i]) {
			return i
		}
	}
	return NotFound
}

// FindFirstOfAll returns the index of the first occurrence of pattern that
// starts at or after offset, or NotFound. An empty pattern never matches.
func (s *String) FindFirstOfAll(pattern string, offset int) int {
	s.mustBeValid()
	n := len(pattern)
	if n == 0 {
		return NotFound
	}
	for i := max(offset, 0); i <= s.length-n; i++ {
		if string(s.buf[i:i+n]) == pattern {
			return i
		}
	}
	return NotFound
}

// FindLastOfAny returns the index of the last byte at or before offset that
// is in match, or NotFound. An offset past the end starts at the last byte.
func (s *String) FindLastOfAny(match string, offset int) int {
	s.mustBeValid()
	for i := min(offset, s.length-1); i >= 0; i-- {
		if inSet(match, s.buf[i]) {
			return i
		}
	}
	return NotFound
}

// FindLastOfAll returns the index of the last occurrence of pattern that
// starts at or before offset, or NotFound. An empty pattern never matches.
func (s *String) FindLastOfAll(pattern string, offset int) int {
	s.mustBeValid()
	n := len(pattern)
	if n == 0 {
		return NotFound
	}
	for i := min(offset, s.length-n); i >= 0; i-- {
		if string(s.buf[i:i+n]) == pattern {
			return i
		}
	}
	return NotFound
}

// Count returns the number of non-overlapping occurrences of pattern.
func (s *String) Count(pattern string) int {
	count := 0
	for at := s.FindFirstOfAll(pattern, 0); at >= 0; at = s.FindFirstOfAll(pattern, at+len(pattern)) {
		count++
	}
	return count
}
