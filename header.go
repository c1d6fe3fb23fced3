package accept

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Header keys.
const (
	HeaderAccept         = "Accept"
	HeaderAcceptEncoding = "Accept-Encoding"
	HeaderAcceptLanguage = "Accept-Language"
)

// headerValue joins every line of key into one list, as RFC 9110 allows
// for list-based fields.
func headerValue(h http.Header, key string) (string, error) {
	values := h.Values(key)
	if len(values) == 0 {
		return "", errors.Wrap(ErrMissingHeader, key)
	}
	return strings.Join(values, ", "), nil
}

// GetAccept parses the Accept header of h. It fails when the header is
// missing or malformed.
func GetAccept(h http.Header) (*Accept, error) {
	v, err := headerValue(h, HeaderAccept)
	if err != nil {
		return nil, err
	}
	return ParseAccept(v)
}

// TryGetAccept is like GetAccept but returns nil instead of an error.
func TryGetAccept(h http.Header) *Accept {
	a, _ := GetAccept(h)
	return a
}

// GetAcceptEncoding parses the Accept-Encoding header of h. It fails when
// the header is missing or malformed.
func GetAcceptEncoding(h http.Header) (*AcceptEncoding, error) {
	v, err := headerValue(h, HeaderAcceptEncoding)
	if err != nil {
		return nil, err
	}
	return ParseAcceptEncoding(v)
}

// TryGetAcceptEncoding is like GetAcceptEncoding but returns nil instead
// of an error.
func TryGetAcceptEncoding(h http.Header) *AcceptEncoding {
	e, _ := GetAcceptEncoding(h)
	return e
}

// GetAcceptLanguage parses the Accept-Language header of h. It fails when
// the header is missing or malformed.
func GetAcceptLanguage(h http.Header) (*AcceptLanguage, error) {
	v, err := headerValue(h, HeaderAcceptLanguage)
	if err != nil {
		return nil, err
	}
	return ParseAcceptLanguage(v)
}

// TryGetAcceptLanguage is like GetAcceptLanguage but returns nil instead
// of an error.
func TryGetAcceptLanguage(h http.Header) *AcceptLanguage {
	l, _ := GetAcceptLanguage(h)
	return l
}
