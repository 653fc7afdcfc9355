package strbuf

// clampSpan clamps first and length to a span inside [0, s.length].
// ok is false when first lies past the content.
func (s *String) clampSpan(first, length int) (start, n int, ok bool) {
	if first < 0 {
		first = 0
	}
	if first >= s.length {
		return s.length, 0, false
	}
	return first, min(max(length, 0), s.length-first), true
}

// RemoveAt deletes length bytes starting at first. Nothing happens when first
// is at or past the end; length is clamped to the available bytes.
func (s *String) RemoveAt(first, length int) *String {
	s.mustBeValid()

	first, length, ok := s.clampSpan(first, length)
	if !ok || length == 0 {
		return s
	}

	copy(s.buf[first:], s.buf[first+length:s.length+1])
	s.length -= length
	return s
}

// RemoveAtRev keeps only the length bytes starting at first and deletes
// everything else. When first is at or past the end the result is empty.
func (s *String) RemoveAtRev(first, length int) *String {
	s.mustBeValid()

	first, length, ok := s.clampSpan(first, length)
	if !ok {
		return s.Clear()
	}

	copy(s.buf, s.buf[first:first+length])
	s.length = length
	s.buf[length] = 0
	return s
}

// compact keeps the bytes for which keep reports true, in order, and returns
// the number of bytes dropped.
func (s *String) compact(keep func(i int) (skip int, ok bool)) int {
	w := 0
	for r := 0; r < s.length; {
		skip, ok := keep(r)
		if ok {
			s.buf[w] = s.buf[r]
			w++
			r++
			continue
		}
		r += skip
	}

	removed := s.length - w
	s.length = w
	s.buf[w] = 0
	return removed
}

// RemoveAny deletes every byte that is in match and returns how many were
// deleted.
func (s *String) RemoveAny(match string) int {
	s.mustBeValid()
	if match == "" {
		return 0
	}
	return s.compact(func(i int) (int, bool) {
		return 1, !inSet(match, s.buf[i])
	})
}

// RemoveAll deletes every non-overlapping occurrence of pattern, scanning
// left to right, and returns how many bytes were deleted.
func (s *String) RemoveAll(pattern string) int {
	s.mustBeValid()
	n := len(pattern)
	if n == 0 {
		return 0
	}

	next := s.FindFirstOfAll(pattern, 0)
	if next == NotFound {
		return 0
	}
	return s.compact(func(i int) (int, bool) {
		if i != next {
			return 1, true
		}
		// writes stay behind i, so the tail is still intact
		next = s.FindFirstOfAll(pattern, i+n)
		return n, false
	})
}

// Trim deletes leading and trailing bytes that are in match and returns how
// many bytes were deleted.
func (s *String) Trim(match string) int {
	s.mustBeValid()
	old := s.length

	first := 0
	for first < s.length && inSet(match, s.buf[first]) {
		first++
	}
	last := s.length - 1
	for last >= first && inSet(match, s.buf[last]) {
		last--
	}

	s.RemoveAtRev(first, last-first+1)
	return old - s.length
}

// TrimLeft deletes leading bytes that are in match.
func (s *String) TrimLeft(match string) int {
	s.mustBeValid()
	first := 0
	for first < s.length && inSet(match, s.buf[first]) {
		first++
	}
	s.RemoveAt(0, first)
	return first
}

// TrimRight deletes trailing bytes that are in match.
func (s *String) TrimRight(match string) int {
	s.mustBeValid()
	old := s.length
	last := s.length - 1
	for last >= 0 && inSet(match, s.buf[last]) {
		last--
	}
	s.length = last + 1
	s.buf[s.length] = 0
	return old - s.length
}

// Group collapses every run of bytes from match into its first byte, or into
// match[0] when replace is set. It returns how many bytes were deleted.
func (s *String) Group(match string, replace bool) int {
	s.mustBeValid()
	if s.length == 0 || match == "" {
		return 0
	}

	w, r := 0, 0
	for r < s.length {
		c := s.buf[r]
		r++
		if !inSet(match, c) {
			s.buf[w] = c
			w++
			continue
		}
		if replace {
			c = match[0]
		}
		s.buf[w] = c
		w++
		for r < s.length && inSet(match, s.buf[r]) {
			r++
		}
	}

	removed := s.length - w
	s.length = w
	s.buf[w] = 0
	return removed
}

// ReplaceAll replaces every non-overlapping occurrence of pattern with
// replacement, scanning left to right, and returns the number of
// replacements.
func (s *String) ReplaceAll(pattern, replacement string) int {
	s.mustBeValid()
	n := len(pattern)
	if n == 0 {
		return 0
	}

	at := s.FindFirstOfAll(pattern, 0)
	if at == NotFound {
		return 0
	}

	out := make([]byte, 0, s.length)
	count, from := 0, 0
	for ; at != NotFound; at = s.FindFirstOfAll(pattern, from) {
		out = append(out, s.buf[from:at]...)
		out = append(out, replacement...)
		from = at + n
		count++
	}
	out = append(out, s.buf[from:s.length]...)

	s.Clear()
	s.Append(out, len(out))
	return count
}
