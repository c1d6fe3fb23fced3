package accept

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// AcceptLanguage is a parsed Accept-Language header. The zero value is an
// empty header, which accepts every language.
//
// Matching is RFC 4647 basic filtering on subtag boundaries; both '-' and
// '/' separate subtags, so "en" covers "en-US" as well as "en/US".
type AcceptLanguage struct {
	prefs []Preference[string]
}

// ParseAcceptLanguage parses an Accept-Language header value.
func ParseAcceptLanguage(s string) (*AcceptLanguage, error) {
	l, ok := parseAcceptLanguage(s)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidHeader, "%s %q", HeaderAcceptLanguage, s)
	}
	return l, nil
}

// TryParseAcceptLanguage is like ParseAcceptLanguage but returns nil on
// malformed input.
func TryParseAcceptLanguage(s string) *AcceptLanguage {
	l, _ := parseAcceptLanguage(s)
	return l
}

func parseAcceptLanguage(s string) (*AcceptLanguage, bool) {
	l := new(AcceptLanguage)
	ok := readList(s, func(sc *Scanner) bool {
		p, ok := readWeighted(sc, readLanguageRange)
		if ok {
			l.prefs = append(l.prefs, p)
		}
		return ok
	})
	if !ok {
		return nil, false
	}
	return l, true
}

func readLanguageRange(sc *Scanner) (string, bool) {
	start := sc.Pos()
	if _, ok := sc.ReadToken(); !ok {
		return "", false
	}
	for {
		pos := sc.Pos()
		if !sc.ReadChar('/') {
			break
		}
		if _, ok := sc.ReadToken(); !ok {
			sc.Seek(pos)
			return "", false
		}
	}
	return sc.s[start:sc.Pos()], true
}

// Add appends a language range such as "en", "en-US" or "*" with weight q.
func (l *AcceptLanguage) Add(languageRange string, q float64) error {
	q, err := checkWeight(q)
	if err != nil {
		return err
	}
	if _, ok := parseWhole(languageRange, readLanguageRange); !ok {
		return errors.Wrapf(ErrInvalidPattern, "language range %q", languageRange)
	}
	l.prefs = append(l.prefs, Preference[string]{Pattern: languageRange, Q: q})
	return nil
}

// Len returns the number of preferences.
func (l *AcceptLanguage) Len() int {
	return len(l.entries())
}

// Entries returns a copy of the preferences in header order.
func (l *AcceptLanguage) Entries() []Preference[string] {
	return slices.Clone(l.entries())
}

func (l *AcceptLanguage) entries() []Preference[string] {
	if l == nil {
		return nil
	}
	return l.prefs
}

// NegotiateAll returns the acceptable language tags among candidates, best
// first.
func (l *AcceptLanguage) NegotiateAll(candidates ...string) ([]string, error) {
	return negotiateAll(candidates, l.entries(), languageStrategy)
}

// Negotiate returns the best acceptable language tag, or "" when none is.
func (l *AcceptLanguage) Negotiate(candidates ...string) (string, error) {
	return negotiate(candidates, l.entries(), languageStrategy)
}

// Accepts reports whether tag is acceptable.
func (l *AcceptLanguage) Accepts(tag string) bool {
	return accepts(tag, l.entries(), languageStrategy)
}

func (l *AcceptLanguage) String() string {
	return formatWeighted(l.entries())
}

const (
	scoreLanguageExact    = 4000
	scoreLanguagePrefix   = 2000
	scoreLanguageSubsumed = 1000
)

func scoreLanguage(pattern, candidate string) (int, bool) {
	switch {
	case strings.EqualFold(pattern, candidate):
		return scoreLanguageExact, true
	case hasSubtagPrefix(candidate, pattern):
		return scoreLanguagePrefix, true
	case hasSubtagPrefix(pattern, candidate):
		return scoreLanguageSubsumed, true
	case pattern == Wildcard:
		return 0, true
	}
	return 0, false
}

// hasSubtagPrefix reports whether tag starts with prefix followed by a
// subtag separator.
func hasSubtagPrefix(tag, prefix string) bool {
	if len(tag) <= len(prefix) || !strings.EqualFold(tag[:len(prefix)], prefix) {
		return false
	}
	c := tag[len(prefix)]
	return c == '-' || c == '/'
}

var languageStrategy = strategy[string, string]{
	prepare:         prepareString,
	score:           scoreLanguage,
	emptyAcceptsAll: true,
}
