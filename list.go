package accept

// readList reads a comma-separated list (RFC 9110, section 5.6.1), calling
// item for each non-empty element. Empty elements are skipped.
func readList(s string, item func(sc *Scanner) bool) bool {
	sc := NewScanner(s)
	for {
		sc.SkipWS()
		if !sc.HasNext() {
			return true
		}
		if sc.ReadChar(',') {
			continue
		}
		if !item(sc) {
			return false
		}
		sc.SkipWS()
		if !sc.HasNext() {
			return true
		}
		if !sc.ReadChar(',') {
			return false
		}
	}
}

// readWeighted reads one element made of pattern followed by an optional
// weight, the shape shared by Accept-Encoding and Accept-Language.
func readWeighted(sc *Scanner, pattern func(sc *Scanner) (string, bool)) (Preference[string], bool) {
	p, ok := pattern(sc)
	if !ok {
		return Preference[string]{}, false
	}
	q, ok := ReadWeight(sc)
	if !ok {
		return Preference[string]{}, false
	}
	return Preference[string]{Pattern: p, Q: q}, true
}

// parseWhole reports whether pattern consumes all of s.
func parseWhole(s string, pattern func(sc *Scanner) (string, bool)) (string, bool) {
	sc := NewScanner(s)
	p, ok := pattern(sc)
	if !ok || sc.HasNext() {
		return "", false
	}
	return p, true
}
