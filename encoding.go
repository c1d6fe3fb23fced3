package accept

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Well-known content codings.
const (
	Identity = "identity"
	Wildcard = "*"
)

// AcceptEncoding is a parsed Accept-Encoding header. The zero value is an
// empty header, which accepts none of the offered codings.
type AcceptEncoding struct {
	prefs []Preference[string]
}

// ParseAcceptEncoding parses an Accept-Encoding header value.
func ParseAcceptEncoding(s string) (*AcceptEncoding, error) {
	e, ok := parseAcceptEncoding(s)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidHeader, "%s %q", HeaderAcceptEncoding, s)
	}
	return e, nil
}

// TryParseAcceptEncoding is like ParseAcceptEncoding but returns nil on
// malformed input.
func TryParseAcceptEncoding(s string) *AcceptEncoding {
	e, _ := parseAcceptEncoding(s)
	return e
}

func parseAcceptEncoding(s string) (*AcceptEncoding, bool) {
	e := new(AcceptEncoding)
	ok := readList(s, func(sc *Scanner) bool {
		p, ok := readWeighted(sc, (*Scanner).ReadToken)
		if ok {
			e.prefs = append(e.prefs, p)
		}
		return ok
	})
	if !ok {
		return nil, false
	}
	return e, true
}

// Add appends a content coding (a token, "identity" or "*") with weight q.
func (e *AcceptEncoding) Add(coding string, q float64) error {
	q, err := checkWeight(q)
	if err != nil {
		return err
	}
	if !IsToken(coding) {
		return errors.Wrapf(ErrInvalidPattern, "content coding %q", coding)
	}
	e.prefs = append(e.prefs, Preference[string]{Pattern: coding, Q: q})
	return nil
}

// Len returns the number of preferences.
func (e *AcceptEncoding) Len() int {
	return len(e.entries())
}

// Entries returns a copy of the preferences in header order.
func (e *AcceptEncoding) Entries() []Preference[string] {
	return slices.Clone(e.entries())
}

func (e *AcceptEncoding) entries() []Preference[string] {
	if e == nil {
		return nil
	}
	return e.prefs
}

// NegotiateAll returns the acceptable codings among candidates, best first.
// A header without preferences accepts none of them.
func (e *AcceptEncoding) NegotiateAll(candidates ...string) ([]string, error) {
	return negotiateAll(candidates, e.entries(), codingStrategy)
}

// Negotiate returns the best acceptable coding, or "" when none is.
func (e *AcceptEncoding) Negotiate(candidates ...string) (string, error) {
	return negotiate(candidates, e.entries(), codingStrategy)
}

// Accepts reports whether coding is acceptable.
func (e *AcceptEncoding) Accepts(coding string) bool {
	return accepts(coding, e.entries(), codingStrategy)
}

func (e *AcceptEncoding) String() string {
	return formatWeighted(e.entries())
}

const scoreCodingExact = 1000

func scoreCoding(pattern, candidate string) (int, bool) {
	switch {
	case strings.EqualFold(pattern, candidate):
		return scoreCodingExact, true
	case pattern == Wildcard:
		return 0, true
	}
	return 0, false
}

var codingStrategy = strategy[string, string]{
	prepare: prepareString,
	score:   scoreCoding,
}

func formatWeighted(prefs []Preference[string]) string {
	var b strings.Builder
	for i, p := range prefs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Pattern)
		writeWeight(&b, p.Q)
	}
	return b.String()
}
