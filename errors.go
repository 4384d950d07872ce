package emberhttp

import "errors"

// ErrorKind enumerates the closed set of failure modes a caller can observe
// anywhere on the request or response path. The set is intentionally flat:
// no dynamic error objects are needed because every failure mode the core
// can produce is known in advance (spec §7).
type ErrorKind uint8

const (
	// ErrKindDNS indicates the DNS resolver collaborator failed.
	ErrKindDNS ErrorKind = iota + 1
	// ErrKindNetwork indicates a transport-level error. Cause, if set,
	// echoes the transport's own classification.
	ErrKindNetwork
	// ErrKindConnectionAborted indicates the transport reached EOF in the
	// middle of a protocol unit (headers, a chunk, a fixed-length body).
	ErrKindConnectionAborted
	// ErrKindCodec indicates malformed framing: a bad header, bad chunk
	// size, inconsistent Content-Length, an oversize Transfer-Encoding
	// list, or an unparseable decimal/hex value.
	ErrKindCodec
	// ErrKindInvalidURL indicates the URL collaborator rejected the input.
	ErrKindInvalidURL
	// ErrKindTLS indicates a TLS handshake or record-layer failure.
	ErrKindTLS
	// ErrKindBufferTooSmall indicates a caller buffer could not hold the
	// response headers, or the body exceeded the target buffer during
	// read_to_end.
	ErrKindBufferTooSmall
	// ErrKindAlreadySent indicates a one-shot request handle was sent twice.
	ErrKindAlreadySent
	// ErrKindIncorrectBodyWritten indicates a body with a known length
	// wrote fewer bytes than declared.
	ErrKindIncorrectBodyWritten
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindDNS:
		return "dns"
	case ErrKindNetwork:
		return "network"
	case ErrKindConnectionAborted:
		return "connection_aborted"
	case ErrKindCodec:
		return "codec"
	case ErrKindInvalidURL:
		return "invalid_url"
	case ErrKindTLS:
		return "tls"
	case ErrKindBufferTooSmall:
		return "buffer_too_small"
	case ErrKindAlreadySent:
		return "already_sent"
	case ErrKindIncorrectBodyWritten:
		return "incorrect_body_written"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced anywhere on the request/response
// path. Kind classifies the failure; Cause, when non-nil, is the underlying
// error (a transport error, a DNS failure, a TLS handshake error, ...).
type Error struct {
	Kind   ErrorKind
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return "emberhttp: " + e.Kind.String() + ": " + e.Reason
	}
	if e.Cause != nil {
		return "emberhttp: " + e.Kind.String() + ": " + e.Cause.Error()
	}
	return "emberhttp: " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }

func newErr(kind ErrorKind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func wrapErr(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Is implements the errors.Is contract for the sentinel-style comparisons
// callers reach for most often: err is *Error and has the expected kind.
func (e *Error) Is(target error) bool {
	var te *Error
	if errors.As(target, &te) {
		return te.Kind == e.Kind && te.Reason == ""
	}
	return false
}

// Pre-built sentinels for kinds that never carry a dynamic reason or cause,
// mirroring the teacher's package-level `var Err... = errors.New(...)` style
// (http11/errors.go) while still satisfying errors.Is(err, ErrAlreadySent).
var (
	ErrAlreadySent          = &Error{Kind: ErrKindAlreadySent}
	ErrIncorrectBodyWritten = &Error{Kind: ErrKindIncorrectBodyWritten}
	ErrConnectionAborted    = &Error{Kind: ErrKindConnectionAborted}
	ErrBufferTooSmall       = &Error{Kind: ErrKindBufferTooSmall}
)
