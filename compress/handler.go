package compress

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

// Options configures the middleware.
type Options struct {
	// Level is the compression level, -1 (DefaultLevel) for each
	// algorithm's default.
	Level int
	// Encodings lists the codings the server offers, most preferred
	// first. Defaults to DefaultEncodings.
	Encodings []string
	// Logger receives debug records about negotiation fallbacks and
	// errors closing the compressors. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the options Handler uses.
func DefaultOptions() Options {
	return Options{Level: DefaultLevel}
}

// Handler wraps a Handler and returns a new one
// which makes future Write calls to compress the data before sent
// and future request body to decompress the incoming data before read.
func Handler(next http.Handler) http.HandlerFunc {
	return HandlerWithOptions(next, DefaultOptions())
}

// HandlerWithOptions is like Handler but configured by "opts".
func HandlerWithOptions(next http.Handler, opts Options) http.HandlerFunc {
	return WriteHandlerWithOptions(ReadHandlerWithOptions(next, opts), opts)
}

// WriteHandler is the write using compression middleware.
func WriteHandler(next http.Handler) http.HandlerFunc {
	return WriteHandlerWithOptions(next, DefaultOptions())
}

// WriteHandlerWithOptions is like WriteHandler but configured by "opts".
func WriteHandlerWithOptions(next http.Handler, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cr, err := NewResponseWriterWith(w, r, opts)
		if err != nil {
			if !errors.Is(err, ErrResponseNotCompressed) {
				debug(opts.Logger, "response not compressed", "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}
		defer func() {
			if err := cr.Close(); err != nil {
				debug(opts.Logger, "closing compressor", "encoding", cr.Encoding, "error", err)
			}
		}()

		r.Header.Del(AcceptEncodingHeaderKey)
		next.ServeHTTP(cr, r)
	}
}

// ReadHandler is the decompress and read request body middleware.
func ReadHandler(next http.Handler) http.HandlerFunc {
	return ReadHandlerWithOptions(next, DefaultOptions())
}

// ReadHandlerWithOptions is like ReadHandler but logs through
// "opts.Logger".
func ReadHandlerWithOptions(next http.Handler, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		encoding := r.Header.Get(ContentEncodingHeaderKey)
		if encoding != "" {
			rc, err := NewReader(r.Body, encoding)
			switch {
			case err == nil:
				defer rc.Close()
				r.Body = rc
			case !errors.Is(err, ErrRequestNotCompressed):
				debug(opts.Logger, "request body passed through", "encoding", encoding, "error", err)
			}
		}

		next.ServeHTTP(w, r)
	}
}

func debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}
