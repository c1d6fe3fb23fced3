// Package compress encodes response bodies and decodes request bodies with
// the content coding a client negotiated through Accept-Encoding.
package compress

import (
	"io"
	"strings"

	// Pick the fastest compression packages for the job.
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2" // Snappy output but likely faster decompression.
	"github.com/klauspost/compress/snappy"
	"github.com/pkg/errors"

	"github.com/kataras/accept"
)

// The available builtin compression algorithms.
const (
	GZIP    = "gzip"
	DEFLATE = "deflate"
	BROTLI  = "br"
	SNAPPY  = "snappy"
	S2      = "s2"

	// IDENTITY when no transformation whatsoever.
	IDENTITY = accept.Identity
)

// DefaultEncodings is the server preference order used when Options
// does not name one. It breaks ties between codings the client weighs
// equally.
var DefaultEncodings = []string{GZIP, DEFLATE, BROTLI, SNAPPY, S2}

// DefaultLevel selects each algorithm's default compression level.
const DefaultLevel = -1

var (
	// ErrResponseNotCompressed returned from NewResponseWriter
	// when the request has no Accept-Encoding header or a malformed one.
	// The caller should fallback to the original response writer.
	ErrResponseNotCompressed = errors.New("compress: response will not be compressed")
	// ErrRequestNotCompressed returned from NewReader
	// when request is not compressed.
	ErrRequestNotCompressed = errors.New("compress: request is not compressed")
	// ErrNotSupportedCompression returned from
	// NewResponseWriter, NewWriter and NewReader
	// when none of the client's acceptable codings is supported by the
	// server. Check that error with `errors.Is`.
	ErrNotSupportedCompression = errors.New("compress: unsupported compression")
)

// Writer is an interface which all compress writers should implement.
type Writer interface {
	io.WriteCloser
	// All known implementations contain `Flush`, `Reset` (and `Close`) methods,
	// so we wanna declare them upfront.
	Flush() error
	Reset(io.Writer)
}

// NewWriter returns a Writer of "w" based on the given "encoding".
// Encoding names are matched case-insensitively.
func NewWriter(w io.Writer, encoding string, level int) (cw Writer, err error) {
	switch strings.ToLower(encoding) {
	case GZIP:
		cw, err = gzip.NewWriterLevel(w, level)
	case DEFLATE: // -1 default level, same for gzip.
		cw, err = flate.NewWriter(w, level)
	case BROTLI: // 6 default level.
		if level == DefaultLevel {
			level = brotli.DefaultCompression
		}
		cw = brotli.NewWriterLevel(w, level)
	case SNAPPY:
		cw = snappy.NewWriter(w)
	case S2:
		cw = s2.NewWriter(w)
	default:
		// "identity" is only meaningful in Accept-Encoding, never as a
		// Content-Encoding.
		err = errors.Wrapf(ErrNotSupportedCompression, "encoding %q", encoding)
	}

	return
}

// Reader is a structure which wraps a compressed reader.
// It is used for determination across common request body and a compressed one.
type Reader struct {
	io.ReadCloser

	// We need this to reset the body to its original state, if requested.
	Src io.ReadCloser
	// Encoding is the compression alogirthm is used to decompress and read the data.
	Encoding string
}

// NewReader returns a new "Reader" wrapper of "src".
// It returns `ErrRequestNotCompressed` if client's request data are not compressed
// or `ErrNotSupportedCompression` if server missing the decompression algorithm.
// Note: on server-side the request body (src) will be closed automaticaly.
func NewReader(src io.Reader, encoding string) (*Reader, error) {
	encoding = strings.ToLower(strings.TrimSpace(encoding))
	if encoding == "" || encoding == IDENTITY || src == nil {
		return nil, ErrRequestNotCompressed
	}

	var (
		rc  io.ReadCloser
		err error
	)

	switch encoding {
	case GZIP:
		rc, err = gzip.NewReader(src)
	case DEFLATE:
		rc = flate.NewReader(src)
	case BROTLI:
		rc = io.NopCloser(brotli.NewReader(src))
	case SNAPPY:
		rc = io.NopCloser(snappy.NewReader(src))
	case S2:
		rc = io.NopCloser(s2.NewReader(src))
	default:
		err = errors.Wrapf(ErrNotSupportedCompression, "encoding %q", encoding)
	}

	if err != nil {
		return nil, err
	}

	srcReadCloser, ok := src.(io.ReadCloser)
	if !ok {
		srcReadCloser = io.NopCloser(src)
	}

	v := &Reader{
		ReadCloser: rc,
		Src:        srcReadCloser,
		Encoding:   encoding,
	}

	return v, nil
}

// Close closes the decompressor and the source.
func (r *Reader) Close() error {
	err := r.ReadCloser.Close()
	if srcErr := r.Src.Close(); err == nil {
		err = srcErr
	}
	return err
}

// Negotiate picks the coding to encode a response with, among "offers"
// (DefaultEncodings when empty), for the given Accept-Encoding preferences.
// A nil "ae" means the request had no usable Accept-Encoding header.
func Negotiate(ae *accept.AcceptEncoding, offers ...string) (string, error) {
	if ae == nil {
		return "", ErrResponseNotCompressed
	}
	if len(offers) == 0 {
		offers = DefaultEncodings
	}

	encoding, err := ae.Negotiate(offers...)
	if err != nil {
		return "", err
	}
	if encoding == "" {
		return "", errors.Wrapf(ErrNotSupportedCompression, "%s %q", accept.HeaderAcceptEncoding, ae)
	}
	return encoding, nil
}
