package accept

import (
	"strings"

	"github.com/pkg/errors"
)

// MediaType is a type/subtype pair with parameters. In an Accept header
// either part may be "*", but "*/subtype" is not allowed.
type MediaType struct {
	Type    string
	Subtype string
	Params  Params
}

// ParseMediaType parses a media type or media range without a weight.
func ParseMediaType(s string) (MediaType, error) {
	m, ok := parseMediaType(s)
	if !ok {
		return MediaType{}, errors.Wrapf(ErrInvalidPattern, "media type %q", s)
	}
	return m, nil
}

func parseMediaType(s string) (MediaType, bool) {
	sc := NewScanner(s)
	sc.SkipWS()
	m, ok := readMediaType(sc, nil)
	sc.SkipWS()
	if !ok || sc.HasNext() {
		return MediaType{}, false
	}
	return m, true
}

func readMediaType(sc *Scanner, weight *float64) (MediaType, bool) {
	var m MediaType
	var ok bool
	if m.Type, ok = sc.ReadToken(); !ok || !sc.ReadChar('/') {
		return MediaType{}, false
	}
	if m.Subtype, ok = sc.ReadToken(); !ok {
		return MediaType{}, false
	}
	if m.Type == "*" && m.Subtype != "*" {
		return MediaType{}, false
	}
	if !ReadParams(sc, &m.Params, weight) {
		return MediaType{}, false
	}
	return m, true
}

// String renders the media type with its parameters.
func (m MediaType) String() string {
	var b strings.Builder
	m.writeTo(&b)
	return b.String()
}

func (m MediaType) writeTo(b *strings.Builder) {
	b.WriteString(m.Type)
	b.WriteByte('/')
	b.WriteString(m.Subtype)
	m.Params.writeTo(b)
}

// Scores: an exact type outranks any subtype or parameter match, an exact
// subtype outranks any number of parameter matches.
const (
	scoreMediaType    = 10000
	scoreMediaSubtype = 1000
	scoreMediaParam   = 1
)

func scoreMediaRange(pattern, candidate MediaType) (int, bool) {
	score := 0

	switch {
	case pattern.Type == "*":
	case strings.EqualFold(pattern.Type, candidate.Type):
		score += scoreMediaType
	default:
		return 0, false
	}

	switch {
	case pattern.Subtype == "*":
	case strings.EqualFold(pattern.Subtype, candidate.Subtype):
		score += scoreMediaSubtype
	default:
		return 0, false
	}

	for _, p := range pattern.Params {
		v, ok := candidate.Params.Get(p.Name)
		switch {
		case !ok:
			return 0, false
		case p.Value == "*" || v == "*":
		case strings.EqualFold(p.Value, v):
			score += scoreMediaParam
		default:
			return 0, false
		}
	}
	return score, true
}

var mediaStrategy = strategy[MediaType, MediaType]{
	prepare:         parseMediaType,
	score:           scoreMediaRange,
	emptyAcceptsAll: true,
}
