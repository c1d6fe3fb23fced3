package accept

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Accept is a parsed Accept header. The zero value is an empty header,
// which accepts every media type.
type Accept struct {
	prefs []Preference[MediaType]
}

// ParseAccept parses an Accept header value.
func ParseAccept(s string) (*Accept, error) {
	a, ok := parseAccept(s)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidHeader, "%s %q", HeaderAccept, s)
	}
	return a, nil
}

// TryParseAccept is like ParseAccept but returns nil on malformed input.
func TryParseAccept(s string) *Accept {
	a, _ := parseAccept(s)
	return a
}

func parseAccept(s string) (*Accept, bool) {
	a := new(Accept)
	ok := readList(s, func(sc *Scanner) bool {
		q := 1.0
		m, ok := readMediaType(sc, &q)
		if ok {
			a.prefs = append(a.prefs, Preference[MediaType]{Pattern: m, Q: q})
		}
		return ok
	})
	if !ok {
		return nil, false
	}
	return a, true
}

// Add appends a media range such as "text/*" or "text/html;level=1"
// with weight q. The range must not carry a q parameter itself.
func (a *Accept) Add(mediaRange string, q float64) error {
	q, err := checkWeight(q)
	if err != nil {
		return err
	}
	m, ok := parseMediaType(mediaRange)
	if !ok {
		return errors.Wrapf(ErrInvalidPattern, "media range %q", mediaRange)
	}
	if _, ok := m.Params.Get("q"); ok {
		return errors.Wrapf(ErrInvalidPattern, "media range %q has a weight", mediaRange)
	}
	a.prefs = append(a.prefs, Preference[MediaType]{Pattern: m, Q: q})
	return nil
}

// Len returns the number of preferences.
func (a *Accept) Len() int {
	return len(a.entries())
}

// Entries returns a copy of the preferences in header order.
func (a *Accept) Entries() []Preference[MediaType] {
	entries := slices.Clone(a.entries())
	for i := range entries {
		entries[i].Pattern.Params = slices.Clone(entries[i].Pattern.Params)
	}
	return entries
}

func (a *Accept) entries() []Preference[MediaType] {
	if a == nil {
		return nil
	}
	return a.prefs
}

// NegotiateAll returns the acceptable media types among candidates, best
// first. Candidates are matched case-insensitively and returned as given.
func (a *Accept) NegotiateAll(candidates ...string) ([]string, error) {
	return negotiateAll(candidates, a.entries(), mediaStrategy)
}

// Negotiate returns the best acceptable media type among candidates, or ""
// when none is acceptable.
func (a *Accept) Negotiate(candidates ...string) (string, error) {
	return negotiate(candidates, a.entries(), mediaStrategy)
}

// Accepts reports whether mediaType is acceptable.
func (a *Accept) Accepts(mediaType string) bool {
	return accepts(mediaType, a.entries(), mediaStrategy)
}

func (a *Accept) String() string {
	var b strings.Builder
	for i, p := range a.entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		p.Pattern.writeTo(&b)
		writeWeight(&b, p.Q)
	}
	return b.String()
}
