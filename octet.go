package accept

import "strings"

// Octet types from RFC 9110, section 5.6.
var octetTypes [256]octetType

type octetType byte

const (
	isToken octetType = 1 << iota
	isSpace
	isDigit
)

func init() {
	for c := 0; c < 256; c++ {
		var t octetType
		isCtl := c <= 31 || c == 127
		isChar := 0 <= c && c <= 127
		isDelimiter := strings.IndexRune(" \t\"(),/:;<=>?@[]\\{}", rune(c)) >= 0
		if c == ' ' || c == '\t' {
			t |= isSpace
		}
		if '0' <= c && c <= '9' {
			t |= isDigit
		}
		if isChar && !isCtl && !isDelimiter {
			t |= isToken
		}
		octetTypes[c] = t
	}
}

// IsToken reports whether s is a non-empty run of tchar.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if octetTypes[s[i]]&isToken == 0 {
			return false
		}
	}
	return true
}

// quote returns s unchanged when it is a token, otherwise as a
// quoted-string with '"' and '\' escaped.
func quote(s string) string {
	if IsToken(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}
