package strbuf

// Sink receives each span produced by a split. Every span is a new String
// owned by the receiver.
type Sink func(sub *String)

// Collect returns a Sink that appends spans to dst.
func Collect(dst *[]*String) Sink {
	return func(sub *String) {
		*dst = append(*dst, sub)
	}
}

// Substring returns a new String holding the clamped span of length bytes
// starting at first.
func (s *String) Substring(first, length int) *String {
	s.mustBeValid()
	first, length, _ = s.clampSpan(first, length)
	return New(s.buf[first:first+length], length)
}

// SubstringRev returns a new String holding everything except the clamped
// span of length bytes starting at first. It is the complement of Substring.
func (s *String) SubstringRev(first, length int) *String {
	s.mustBeValid()
	first, length, _ = s.clampSpan(first, length)
	if length == 0 {
		return s.Duplicate()
	}

	sub := New(s.buf[:first], first)
	tail := s.buf[first+length : s.length]
	return sub.Append(tail, len(tail))
}

// split walks s with next, which returns the start and width of the next
// separator at or after from, or NotFound. The spans between separators go
// to sink.
func (s *String) split(includeEmpty bool, sink Sink, next func(from int) (at, width int)) int {
	count, start := 0, 0
	for {
		at, width := next(start)
		end := at
		if at == NotFound {
			end = s.length
		}

		if end > start || includeEmpty {
			if sink != nil {
				sink(s.Substring(start, end-start))
			}
			count++
		}

		if at == NotFound {
			return count
		}
		start = at + width
	}
}

// SplitOnAny splits s at every byte that is in match. Empty spans are only
// emitted when includeEmpty is set. It returns the number of spans emitted.
func (s *String) SplitOnAny(match string, includeEmpty bool, sink Sink) int {
	s.mustBeValid()
	return s.split(includeEmpty, sink, func(from int) (int, int) {
		return s.FindFirstOfAny(match, from), 1
	})
}

// SplitOnAll splits s at every non-overlapping occurrence of pattern,
// scanning left to right. An empty pattern yields the whole string as one
// span. It returns the number of spans emitted.
func (s *String) SplitOnAll(pattern string, includeEmpty bool, sink Sink) int {
	s.mustBeValid()
	return s.split(includeEmpty, sink, func(from int) (int, int) {
		return s.FindFirstOfAll(pattern, from), len(pattern)
	})
}
