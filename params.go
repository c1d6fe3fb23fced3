package accept

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Param is a single name=value parameter. The value is stored unquoted.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered parameter list, as it appeared in the header.
type Params []Param

// Get returns the value of the first parameter named name, compared
// case-insensitively.
func (ps Params) Get(name string) (string, bool) {
	for _, p := range ps {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// String renders the parameters as ";name=value" pairs, quoting values
// that are not tokens.
func (ps Params) String() string {
	var b strings.Builder
	ps.writeTo(&b)
	return b.String()
}

func (ps Params) writeTo(b *strings.Builder) {
	for _, p := range ps {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(quote(p.Value))
	}
}

// ReadParams reads a sequence of OWS ";" OWS name=value parameters and
// appends them to params. When weight is not nil a parameter named "q"
// (in any case) is parsed as a qvalue and stored into weight instead.
//
// It returns false, with params and weight in an unspecified state, when a
// parameter is malformed; the caller must then reject the whole value.
func ReadParams(sc *Scanner, params *Params, weight *float64) bool {
	for {
		start := sc.Pos()
		sc.SkipWS()
		if !sc.ReadChar(';') {
			sc.Seek(start)
			return true
		}
		sc.SkipWS()

		name, ok := sc.ReadToken()
		if !ok || !sc.ReadChar('=') {
			return false
		}

		if weight != nil && strings.EqualFold(name, "q") {
			q, ok := readQValue(sc)
			if !ok {
				return false
			}
			*weight = q
			continue
		}

		value, ok := sc.ReadTokenOrQuotedString()
		if !ok {
			return false
		}
		*params = append(*params, Param{Name: name, Value: value})
	}
}

// ReadWeight reads an optional OWS ";" OWS "q=" qvalue. It returns 1 when
// no parameter follows and false when one follows but is not a valid
// weight.
func ReadWeight(sc *Scanner) (float64, bool) {
	start := sc.Pos()
	sc.SkipWS()
	if !sc.ReadChar(';') {
		sc.Seek(start)
		return 1, true
	}
	sc.SkipWS()

	name, ok := sc.ReadToken()
	if !ok || !strings.EqualFold(name, "q") || !sc.ReadChar('=') {
		return 0, false
	}
	return readQValue(sc)
}

func readQValue(sc *Scanner) (float64, bool) {
	lexeme, ok := sc.ReadNumber()
	if !ok {
		return 0, false
	}
	return ParseQValue(lexeme)
}

// ParseQValue parses a decimal in [0, 1] with at most three fractional
// digits.
func ParseQValue(s string) (float64, bool) {
	whole, frac, _ := strings.Cut(s, ".")
	whole = strings.TrimLeft(whole, "0")
	if len(whole) > 1 || len(frac) > 3 {
		return 0, false
	}
	if whole == "" && !strings.HasPrefix(s, "0") {
		return 0, false
	}

	n := 0
	if whole == "1" {
		n = 1000
	} else if whole != "" {
		return 0, false
	}
	for i, scale := 0, 100; i < len(frac); i, scale = i+1, scale/10 {
		c := frac[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n += int(c-'0') * scale
	}
	if n > 1000 {
		return 0, false
	}
	return float64(n) / 1000, true
}

// FormatQ renders q with at most three fractional digits and no trailing
// zeros.
func FormatQ(q float64) string {
	s := strconv.FormatFloat(q, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// checkWeight validates a weight given to Add and rounds it to three
// fractional digits.
func checkWeight(q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, errors.Wrapf(ErrInvalidWeight, "q=%v", q)
	}
	return math.Round(q*1000) / 1000, nil
}

func writeWeight(b *strings.Builder, q float64) {
	if q == 1 {
		return
	}
	b.WriteString(";q=")
	b.WriteString(FormatQ(q))
}
