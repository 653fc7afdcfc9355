package strbuf

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }

// Reverse reverses the bytes of s in place.
func (s *String) Reverse() *String {
	s.mustBeValid()
	for i, j := 0, s.length-1; i < j; i, j = i+1, j-1 {
		s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
	}
	return s
}

// ToUpper converts ASCII lowercase letters to uppercase in place.
func (s *String) ToUpper() *String {
	s.mustBeValid()
	for i, c := range s.buf[:s.length] {
		if isLower(c) {
			s.buf[i] = c - ('a' - 'A')
		}
	}
	return s
}

// ToLower converts ASCII uppercase letters to lowercase in place.
func (s *String) ToLower() *String {
	s.mustBeValid()
	for i, c := range s.buf[:s.length] {
		if isUpper(c) {
			s.buf[i] = c + ('a' - 'A')
		}
	}
	return s
}

// IsUpper reports whether s holds no ASCII lowercase letters.
func (s *String) IsUpper() bool {
	s.mustBeValid()
	for _, c := range s.buf[:s.length] {
		if isLower(c) {
			return false
		}
	}
	return true
}

// IsLower reports whether s holds no ASCII uppercase letters.
func (s *String) IsLower() bool {
	s.mustBeValid()
	for _, c := range s.buf[:s.length] {
		if isUpper(c) {
			return false
		}
	}
	return true
}
