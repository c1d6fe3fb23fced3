package accept

import (
	"cmp"
	"slices"
	"strings"
)

// Preference is one element of a negotiation header: a pattern and its
// weight. The pattern type depends on the header.
type Preference[P any] struct {
	Pattern P
	Q       float64
}

// strategy specializes negotiation for one header kind.
type strategy[P, C any] struct {
	// prepare turns a lowercased candidate into the form score expects.
	// Candidates it rejects are never acceptable.
	prepare func(candidate string) (C, bool)
	// score returns how specific the match of pattern against candidate
	// is, or false when the pattern does not match.
	score func(pattern P, candidate C) (int, bool)
	// emptyAcceptsAll selects the result for a header without
	// preferences: every candidate in input order, or none.
	emptyAcceptsAll bool
}

type ranked struct {
	value string
	score int
	q     float64
}

func negotiateAll[P, C any](candidates []string, prefs []Preference[P], st strategy[P, C]) ([]string, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidates
	}
	if len(prefs) == 0 {
		if st.emptyAcceptsAll {
			return slices.Clone(candidates), nil
		}
		return []string{}, nil
	}

	matches := make([]ranked, 0, len(candidates))
	for _, candidate := range candidates {
		c, ok := st.prepare(strings.ToLower(candidate))
		if !ok {
			continue
		}

		best := ranked{value: candidate, score: -1}
		for _, pref := range prefs {
			// Strictly greater: the earliest preference wins ties.
			if score, ok := st.score(pref.Pattern, c); ok && score > best.score {
				best.score, best.q = score, pref.Q
			}
		}
		if best.score < 0 || best.q == 0 {
			continue
		}
		matches = append(matches, best)
	}

	slices.SortStableFunc(matches, func(a, b ranked) int {
		if n := cmp.Compare(b.score, a.score); n != 0 {
			return n
		}
		return cmp.Compare(b.q, a.q)
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out, nil
}

func negotiate[P, C any](candidates []string, prefs []Preference[P], st strategy[P, C]) (string, error) {
	all, err := negotiateAll(candidates, prefs, st)
	if err != nil || len(all) == 0 {
		return "", err
	}
	return all[0], nil
}

func accepts[P, C any](candidate string, prefs []Preference[P], st strategy[P, C]) bool {
	all, err := negotiateAll([]string{candidate}, prefs, st)
	return err == nil && len(all) > 0 && all[0] == candidate
}

func prepareString(candidate string) (string, bool) {
	return candidate, true
}
