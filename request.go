package emberhttp

// Auth carries request authentication. Only HTTP Basic is supported (spec
// §3) — Basic is by far the most common scheme on constrained-device
// integrations (ingest APIs, local gateways) and needs no extra round trip.
type Auth struct {
	Username string
	Password string
}

// RequestBody abstracts over the three ways a request can supply a body:
// none at all, a caller-owned byte slice of known length, or an io.Reader of
// unknown length that must be chunked. This mirrors the original Rust
// RequestBody enum (request.rs) one-to-one; see requestbody.go for the
// concrete implementations.
type RequestBody interface {
	// Len returns the body length and true if it is known up front. A
	// false result means the body must be sent with Transfer-Encoding:
	// chunked.
	Len() (int, bool)

	// WriteTo streams the body through w, which may be a fixed, streaming
	// chunked, or buffering chunked body writer depending on the body's
	// length and the connection variant it is sent over.
	WriteTo(w BodyWriter) error
}

// BodyWriter is the narrow interface every body-writer variant
// (bodywriter_fixed.go, bodywriter_chunked.go, bodywriter_bufchunked.go)
// satisfies, letting RequestBody implementations stay agnostic of framing.
type BodyWriter interface {
	Write(p []byte) (int, error)
}

// Request describes a single HTTP/1.1 request. It is a plain value type;
// nothing about it is pooled or reused automatically (the caller decides
// that, same as the buffers it points into).
type Request struct {
	Method         Method
	Host           string
	Path           string
	Auth           *Auth
	ContentType    ContentType
	HasContentType bool
	Accept         string
	HasAccept      bool
	Extra          ExtraHeaders
	Body           RequestBody
}

// NewRequest builds a Request with no body, no auth, and no extra headers —
// the common case for GET/DELETE/HEAD.
func NewRequest(method Method, host, path string) Request {
	return Request{Method: method, Host: host, Path: path, Body: NoBody{}}
}

// WithAuth attaches HTTP Basic credentials and returns the Request for
// chaining, matching the teacher's functional-options-flavored builder style
// (tls/config.go's WithAutoCert).
func (r Request) WithAuth(username, password string) Request {
	r.Auth = &Auth{Username: username, Password: password}
	return r
}

// WithContentType sets the Content-Type header emitted for this request.
func (r Request) WithContentType(ct ContentType) Request {
	r.ContentType = ct
	r.HasContentType = true
	return r
}

// WithAccept sets the Accept header emitted for this request. Requests with
// no Accept set omit the header entirely rather than sending a wildcard.
func (r Request) WithAccept(value string) Request {
	r.Accept = value
	r.HasAccept = true
	return r
}

// WithBody attaches a request body.
func (r Request) WithBody(body RequestBody) Request {
	r.Body = body
	return r
}
