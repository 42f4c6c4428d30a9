package randomuser

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call.
type Kind int

const (
	// KindTransport means the round trip itself failed: DNS, connect, TLS,
	// timeout or cancellation.
	KindTransport Kind = iota + 1
	// KindAPI means the upstream answered with an error message.
	KindAPI
	// KindFormat means the response could not be classified or decoded.
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindFormat:
		return "format"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by every terminal fetch. Message holds the upstream's
// literal text for KindAPI; Err holds the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrTransport = &Error{Kind: KindTransport}
	ErrAPI       = &Error{Kind: KindAPI}
	ErrFormat    = &Error{Kind: KindFormat}
)

// ErrEmptyBatch is returned by FetchOne when the upstream returned no users.
var ErrEmptyBatch = errors.New("randomuser: empty result batch")

// ErrNoGenerator is returned by fetches on a Builder not obtained from
// Generator.Get.
var ErrNoGenerator = errors.New("randomuser: builder has no generator")

var (
	errMalformedJSON       = errors.New("malformed JSON")
	errMissingResultFields = errors.New(`"results" must be an array alongside an "info" object`)
	errUnknownEnvelope     = errors.New(`envelope has neither "results" nor "error"`)
	errMissingContentType  = errors.New("missing content-type header")
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		if e.Err != nil {
			return "randomuser: transport error: " + e.Err.Error()
		}
		return "randomuser: transport error"
	case KindAPI:
		return "randomuser: api error: " + e.Message
	case KindFormat:
		if e.Err != nil {
			return "randomuser: bad format: " + e.Err.Error()
		}
		return "randomuser: bad format"
	default:
		return "randomuser: " + e.Kind.String()
	}
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// APIMessage returns the upstream message carried by an API error.
func APIMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAPI {
		return e.Message, true
	}
	return "", false
}

func transportError(err error) error {
	return &Error{Kind: KindTransport, Err: err}
}

func formatError(err error) error {
	return &Error{Kind: KindFormat, Err: err}
}

func apiError(msg string) error {
	return &Error{Kind: KindAPI, Message: msg}
}
