package emberhttp

import "io"

// ReaderHint tells ResponseBody which body-framing strategy to use once the
// headers are known, mirroring the original Rust ReaderHint enum exactly
// (spec §4.6).
type ReaderHint uint8

const (
	// ReaderHintEmpty means the response has no body at all (e.g. 204, 304,
	// or a HEAD request's response).
	ReaderHintEmpty ReaderHint = iota
	// ReaderHintFixedLength means Content-Length declared the body size.
	ReaderHintFixedLength
	// ReaderHintChunked means Transfer-Encoding: chunked applies.
	ReaderHintChunked
	// ReaderHintToEnd means neither header was present and the body runs
	// until the connection closes.
	ReaderHintToEnd
)

// ResponseBody is the decoded response body, exposed as an io.Reader
// regardless of which wire framing produced it.
type ResponseBody struct {
	hint    ReaderHint
	br      *BufferingReader
	fixed   *fixedBodyReader
	chunked *ChunkedBodyDecoder
}

// newResponseBody selects the correct BodyReader variant for hint, wrapping
// br (which may already hold body bytes read ahead with the headers).
func newResponseBody(hint ReaderHint, br *BufferingReader, contentLength int) *ResponseBody {
	rb := &ResponseBody{hint: hint, br: br}
	switch hint {
	case ReaderHintFixedLength:
		rb.fixed = &fixedBodyReader{br: br, remaining: contentLength}
	case ReaderHintChunked:
		rb.chunked = NewChunkedBodyDecoder(br)
	}
	return rb
}

// Hint reports which framing strategy this body uses.
func (rb *ResponseBody) Hint() ReaderHint { return rb.hint }

// Read implements io.Reader over whichever framing is active.
func (rb *ResponseBody) Read(p []byte) (int, error) {
	switch rb.hint {
	case ReaderHintEmpty:
		return 0, io.EOF
	case ReaderHintFixedLength:
		return rb.fixed.Read(p)
	case ReaderHintChunked:
		return rb.chunked.Read(p)
	case ReaderHintToEnd:
		return rb.br.Read(p)
	default:
		return 0, io.EOF
	}
}

// ReadAll drains the body into dst, returning ErrBufferTooSmall if dst is
// not large enough to hold it (spec §4.6: "read_to_end never allocates").
func (rb *ResponseBody) ReadAll(dst []byte) (int, error) {
	total := 0
	for {
		if total == len(dst) {
			// confirm the body is actually exhausted before failing, so a
			// perfectly-sized dst isn't rejected.
			var probe [1]byte
			n, err := rb.Read(probe[:])
			if n == 0 && err == io.EOF {
				return total, nil
			}
			return total, ErrBufferTooSmall
		}
		n, err := rb.Read(dst[total:])
		total += n
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// fixedBodyReader reads exactly contentLength bytes from a BufferingReader.
type fixedBodyReader struct {
	br        *BufferingReader
	remaining int
}

func (f *fixedBodyReader) Read(p []byte) (int, error) {
	if f.remaining == 0 {
		return 0, io.EOF
	}
	if len(p) > f.remaining {
		p = p[:f.remaining]
	}
	n, err := f.br.Read(p)
	f.remaining -= n
	if err != nil {
		if err == io.EOF && f.remaining > 0 {
			return n, ErrConnectionAborted
		}
		return n, err
	}
	return n, nil
}
