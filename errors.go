package accept

import "github.com/pkg/errors"

var (
	// ErrEmptyCandidates is returned by the negotiation methods when they
	// are called without any candidate. It is a caller bug, not a
	// negotiation outcome.
	ErrEmptyCandidates = errors.New("accept: no candidates to negotiate")
	// ErrInvalidHeader is returned by the Parse and Get functions when a
	// header value does not follow the header's grammar.
	// Check that error with `errors.Is`.
	ErrInvalidHeader = errors.New("accept: invalid header value")
	// ErrMissingHeader is returned by the Get functions when the request
	// carries no such header.
	ErrMissingHeader = errors.New("accept: missing header")
	// ErrInvalidPattern is returned by Add when the pattern is malformed.
	ErrInvalidPattern = errors.New("accept: invalid pattern")
	// ErrInvalidWeight is returned by Add when q is outside [0, 1].
	ErrInvalidWeight = errors.New("accept: invalid weight")
)
