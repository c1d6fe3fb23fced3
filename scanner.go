package accept

import "strings"

// Scanner is a cursor over a single header field value.
//
// Every Read method either consumes input and reports true, or leaves the
// cursor where it was and reports false, so composite readers can save
// Pos and Seek back to it when an alternative does not match.
type Scanner struct {
	s   string
	pos int
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{s: s}
}

// HasNext reports whether input remains.
func (sc *Scanner) HasNext() bool {
	return sc.pos < len(sc.s)
}

// Pos returns the byte offset of the cursor.
func (sc *Scanner) Pos() int {
	return sc.pos
}

// Seek moves the cursor to pos, clamped to the input bounds.
func (sc *Scanner) Seek(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(sc.s):
		pos = len(sc.s)
	}
	sc.pos = pos
}

// Rest returns the unconsumed input.
func (sc *Scanner) Rest() string {
	return sc.s[sc.pos:]
}

// Peek returns the byte under the cursor without consuming it.
func (sc *Scanner) Peek() (byte, bool) {
	if !sc.HasNext() {
		return 0, false
	}
	return sc.s[sc.pos], true
}

// SkipWS consumes a run of spaces and horizontal tabs (OWS).
func (sc *Scanner) SkipWS() {
	for sc.pos < len(sc.s) && octetTypes[sc.s[sc.pos]]&isSpace != 0 {
		sc.pos++
	}
}

// ReadChar consumes c if it is the next byte.
func (sc *Scanner) ReadChar(c byte) bool {
	if sc.pos < len(sc.s) && sc.s[sc.pos] == c {
		sc.pos++
		return true
	}
	return false
}

// ReadToken consumes a run of tchar.
func (sc *Scanner) ReadToken() (string, bool) {
	return sc.readClass(isToken)
}

// ReadQuotedString consumes a quoted-string and returns its unescaped
// content. A string missing its closing quote is returned as scanned up to
// the end of input.
func (sc *Scanner) ReadQuotedString() (string, bool) {
	if !sc.HasNext() || sc.s[sc.pos] != '"' {
		return "", false
	}

	var b strings.Builder
	i := sc.pos + 1
	for i < len(sc.s) {
		c := sc.s[i]
		switch c {
		case '"':
			sc.pos = i + 1
			return b.String(), true
		case '\\':
			i++
			if i < len(sc.s) {
				b.WriteByte(sc.s[i])
				i++
			}
			continue
		}
		b.WriteByte(c)
		i++
	}

	sc.pos = i
	return b.String(), true
}

// ReadTokenOrQuotedString reads a token, falling back to a quoted-string.
func (sc *Scanner) ReadTokenOrQuotedString() (string, bool) {
	if s, ok := sc.ReadToken(); ok {
		return s, true
	}
	return sc.ReadQuotedString()
}

// ReadInteger consumes a run of ASCII digits and returns it.
func (sc *Scanner) ReadInteger() (string, bool) {
	return sc.readClass(isDigit)
}

// ReadNumber consumes digits optionally followed by '.' and more digits.
// At least one digit must precede the '.'.
func (sc *Scanner) ReadNumber() (string, bool) {
	start := sc.pos
	if _, ok := sc.ReadInteger(); !ok {
		return "", false
	}
	if sc.ReadChar('.') {
		sc.ReadInteger()
	}
	return sc.s[start:sc.pos], true
}

// ReadUntil consumes everything up to, not including, the next sep or the
// end of input. With trim set, surrounding OWS is stripped from the result.
func (sc *Scanner) ReadUntil(sep byte, trim bool) string {
	rest := sc.s[sc.pos:]
	n := strings.IndexByte(rest, sep)
	if n < 0 {
		n = len(rest)
	}
	sc.pos += n
	if trim {
		return strings.Trim(rest[:n], " \t")
	}
	return rest[:n]
}

func (sc *Scanner) readClass(class octetType) (string, bool) {
	i := sc.pos
	for i < len(sc.s) && octetTypes[sc.s[i]]&class != 0 {
		i++
	}
	if i == sc.pos {
		return "", false
	}
	s := sc.s[sc.pos:i]
	sc.pos = i
	return s, true
}
