package accept

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// negotiator is the surface shared by the three header types.
type negotiator interface {
	NegotiateAll(candidates ...string) ([]string, error)
	Negotiate(candidates ...string) (string, error)
	Accepts(candidate string) bool
	String() string
}

var (
	_ negotiator = (*Accept)(nil)
	_ negotiator = (*AcceptEncoding)(nil)
	_ negotiator = (*AcceptLanguage)(nil)
)

func TestEmptyCandidates(t *testing.T) {
	headers := map[string]negotiator{
		"accept empty":          new(Accept),
		"accept":                TryParseAccept("*/*"),
		"accept-encoding empty": new(AcceptEncoding),
		"accept-encoding":       TryParseAcceptEncoding("gzip"),
		"accept-language empty": new(AcceptLanguage),
		"accept-language":       TryParseAcceptLanguage("en"),
	}
	for desc, h := range headers {
		t.Run(desc, func(t *testing.T) {
			_, err := h.NegotiateAll()
			assert.ErrorIs(t, err, ErrEmptyCandidates)

			_, err = h.Negotiate()
			assert.ErrorIs(t, err, ErrEmptyCandidates)
		})
	}
}

func TestNegotiationProperties(t *testing.T) {
	testcases := []struct {
		desc       string
		header     negotiator
		candidates []string
	}{
		{
			desc:       "accept",
			header:     TryParseAccept("text/*;q=0.5, text/html, application/json;q=0.8, image/png;q=0, */*;q=0.1"),
			candidates: []string{"Text/Plain", "image/PNG", "TEXT/HTML", "application/json", "font/woff"},
		},
		{
			desc:       "accept-encoding",
			header:     TryParseAcceptEncoding("gzip;q=0.5, BR, *;q=0.1, s2;q=0"),
			candidates: []string{"GZIP", "br", "Deflate", "s2", "snappy"},
		},
		{
			desc:       "accept-language",
			header:     TryParseAcceptLanguage("de-CH, DE;q=0.9, en;q=0.5, *;q=0.1, fr;q=0"),
			candidates: []string{"EN-gb", "fr", "de", "it", "De-Ch"},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			require.NotNil(t, tc.header)

			first, err := tc.header.NegotiateAll(tc.candidates...)
			require.NoError(t, err)
			second, err := tc.header.NegotiateAll(tc.candidates...)
			require.NoError(t, err)
			assert.Equal(t, first, second, "negotiation must be idempotent")

			lower := make([]string, len(tc.candidates))
			upper := make([]string, len(tc.candidates))
			for i, c := range tc.candidates {
				lower[i] = strings.ToLower(c)
				upper[i] = strings.ToUpper(c)
			}
			lowerResult, err := tc.header.NegotiateAll(lower...)
			require.NoError(t, err)
			upperResult, err := tc.header.NegotiateAll(upper...)
			require.NoError(t, err)
			for i := range first {
				assert.Equal(t, strings.ToLower(first[i]), lowerResult[i])
				assert.Equal(t, strings.ToUpper(first[i]), upperResult[i])
			}
			assert.Len(t, lowerResult, len(first))
			assert.Len(t, upperResult, len(first))

			for _, c := range first {
				assert.True(t, tc.header.Accepts(c), c)
			}
			if len(first) > 0 {
				best, err := tc.header.Negotiate(tc.candidates...)
				require.NoError(t, err)
				assert.Equal(t, first[0], best)
			}
		})
	}
}

func TestZeroWeightExcludes(t *testing.T) {
	a := TryParseAccept("image/png;q=0, image/*")
	require.NotNil(t, a)
	result, err := a.NegotiateAll("image/png", "image/gif", "IMAGE/PNG")
	require.NoError(t, err)
	assert.Equal(t, []string{"image/gif"}, result)

	e := TryParseAcceptEncoding("*;q=0")
	require.NotNil(t, e)
	result, err = e.NegotiateAll("gzip", "br")
	require.NoError(t, err)
	assert.Empty(t, result)

	l := TryParseAcceptLanguage("*;q=0")
	require.NotNil(t, l)
	result, err = l.NegotiateAll("en")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRoundTrip(t *testing.T) {
	var a Accept
	var e AcceptEncoding
	var l AcceptLanguage
	weights := []float64{1, 0.5, 0.0005, 0.999, 0, 0.12345}
	for i, q := range weights {
		require.NoError(t, a.Add([]string{"text/html", "*/*", "image/*", "a/b;c=d", "x/y;z=\"1 2\"", "t/s"}[i], q))
		require.NoError(t, e.Add([]string{"gzip", "*", "br", "identity", "s2", "x-custom"}[i], q))
		require.NoError(t, l.Add([]string{"en", "*", "de-AT", "fr/CA", "it", "pt-BR"}[i], q))
	}

	parsedAccept := TryParseAccept(a.String())
	require.NotNil(t, parsedAccept)
	assert.Equal(t, a.Entries(), parsedAccept.Entries())

	parsedEncoding := TryParseAcceptEncoding(e.String())
	require.NotNil(t, parsedEncoding)
	assert.Equal(t, e.Entries(), parsedEncoding.Entries())

	parsedLanguage := TryParseAcceptLanguage(l.String())
	require.NotNil(t, parsedLanguage)
	assert.Equal(t, l.Entries(), parsedLanguage.Entries())
}

func TestGetHeaders(t *testing.T) {
	h := http.Header{}
	h.Add(HeaderAccept, "text/html")
	h.Add(HeaderAccept, "application/json;q=0.5")
	h.Set(HeaderAcceptEncoding, "gzip;q=5")
	h.Set(HeaderAcceptLanguage, "en, de;q=0.5")

	a, err := GetAccept(h)
	require.NoError(t, err)
	assert.Equal(t, "text/html, application/json;q=0.5", a.String())
	assert.NotNil(t, TryGetAccept(h))

	_, err = GetAcceptEncoding(h)
	assert.ErrorIs(t, err, ErrInvalidHeader)
	assert.Nil(t, TryGetAcceptEncoding(h))

	l, err := GetAcceptLanguage(h)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.NotNil(t, TryGetAcceptLanguage(h))

	empty := http.Header{}
	_, err = GetAccept(empty)
	assert.ErrorIs(t, err, ErrMissingHeader)
	assert.Nil(t, TryGetAccept(empty))
	_, err = GetAcceptEncoding(empty)
	assert.ErrorIs(t, err, ErrMissingHeader)
	_, err = GetAcceptLanguage(empty)
	assert.ErrorIs(t, err, ErrMissingHeader)
	assert.Nil(t, TryGetAcceptLanguage(empty))
}
