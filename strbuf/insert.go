package strbuf

// Insert inserts the first length bytes of src at position at.
// at is clamped into [0, Len()]. A nil src inserts nothing; a negative
// length inserts src up to its first NUL byte. src must not alias the
// content of s; use Concat or Duplicate for self-insertion.
func (s *String) Insert(at int, src []byte, length int) *String {
	s.mustBeValid()

	if at < 0 {
		at = 0
	}
	if at > s.length {
		at = s.length
	}

	n := sourceLength(src, length)
	if n == 0 {
		return s
	}

	newLength := s.length + n
	s.Reserve(newLength)

	// open a gap, moving the tail and its terminator
	copy(s.buf[at+n:], s.buf[at:s.length+1])
	copy(s.buf[at:], src[:n])

	s.length = newLength
	return s
}

// Append adds bytes from src at the end. See Insert for length semantics.
func (s *String) Append(src []byte, length int) *String {
	s.mustBeValid()
	return s.Insert(s.length, src, length)
}

// Prepend adds bytes from src at the start. See Insert for length semantics.
func (s *String) Prepend(src []byte, length int) *String {
	return s.Insert(0, src, length)
}

// InsertString inserts all bytes of str at position at.
func (s *String) InsertString(at int, str string) *String {
	return s.Insert(at, []byte(str), len(str))
}

// AppendString adds all bytes of str at the end.
func (s *String) AppendString(str string) *String {
	s.mustBeValid()
	return s.Insert(s.length, []byte(str), len(str))
}

// PrependString adds all bytes of str at the start.
func (s *String) PrependString(str string) *String {
	return s.Insert(0, []byte(str), len(str))
}

// Concat appends the full content of other to s. other may be s itself.
func (s *String) Concat(other *String) *String {
	s.mustBeValid()
	other.mustBeValid()

	src := other.buf[:other.length]
	if other == s {
		src = append([]byte(nil), src...)
	}
	return s.Insert(s.length, src, len(src))
}
