package compress

import (
	"bufio"
	"net"
	"net/http"

	"github.com/pkg/errors"

	"github.com/kataras/accept"
)

// Header keys.
const (
	AcceptEncodingHeaderKey  = accept.HeaderAcceptEncoding
	VaryHeaderKey            = "Vary"
	ContentEncodingHeaderKey = "Content-Encoding"
	ContentLengthHeaderKey   = "Content-Length"
	ContentTypeHeaderKey     = "Content-Type"
)

// AddCompressHeaders just adds the headers "Vary" to "Accept-Encoding"
// and "Content-Encoding" to the given encoding.
func AddCompressHeaders(h http.Header, encoding string) {
	h.Add(VaryHeaderKey, AcceptEncodingHeaderKey)
	h.Set(ContentEncodingHeaderKey, encoding)
}

// ResponseWriter is a compressed data http.ResponseWriter.
type ResponseWriter struct {
	Writer

	http.ResponseWriter

	Encoding  string
	Level     int
	AutoFlush bool // defaults to true, flushes buffered data on each Write.

	wroteHeader bool
}

var (
	_ http.ResponseWriter = (*ResponseWriter)(nil)
	_ http.Flusher        = (*ResponseWriter)(nil)
	_ http.Hijacker       = (*ResponseWriter)(nil)
)

// NewResponseWriter wraps the "w" response writer and
// returns a new compress response writer instance.
// It accepts http response writer, a net/http request value and
// the level of compression (use -1 for default compression level).
//
// It returns the best candidate among "gzip", "deflate", "br", "snappy" and "s2"
// based on the request's "Accept-Encoding" header value.
//
// See `Handler/WriteHandler` for its usage. In-short, the caller should
// clear the writer through `defer Close()`.
func NewResponseWriter(w http.ResponseWriter, r *http.Request, level int) (*ResponseWriter, error) {
	return NewResponseWriterWith(w, r, Options{Level: level})
}

// NewResponseWriterWith is like NewResponseWriter but reads the level and
// the offered encodings from "opts".
func NewResponseWriterWith(w http.ResponseWriter, r *http.Request, opts Options) (*ResponseWriter, error) {
	encoding, err := Negotiate(accept.TryGetAcceptEncoding(r.Header), opts.Encodings...)
	if err != nil {
		return nil, err
	}

	cr, err := NewWriter(w, encoding, opts.Level)
	if err != nil {
		return nil, err
	}

	AddCompressHeaders(w.Header(), encoding)

	v := &ResponseWriter{
		ResponseWriter: w,
		Level:          opts.Level,
		Encoding:       encoding,
		Writer:         cr,
		AutoFlush:      true,
	}

	return v, nil
}

func (w *ResponseWriter) Write(p []byte) (int, error) {
	h := w.Header()
	if _, has := h[ContentTypeHeaderKey]; !has {
		h[ContentTypeHeaderKey] = []string{http.DetectContentType(p)}
	}

	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.Writer.Write(p)
	if err != nil {
		return 0, err
	}

	if w.AutoFlush {
		err = w.Writer.Flush()
	}

	return n, err
}

// WriteHeader sends an HTTP response header with the provided
// status code. Deletes the "Content-Length" response header and
// calls the ResponseWriter's WriteHeader method.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		delete(w.Header(), ContentLengthHeaderKey)

		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// Flush sends any buffered data to the client.
func (w *ResponseWriter) Flush() {
	w.Writer.Flush()

	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack lets the caller take over the connection, when the underlying
// writer supports it.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, errors.New("compress: response writer does not implement http.Hijacker")
}

// Unwrap returns the original writer, for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
