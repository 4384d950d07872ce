package emberhttp

import (
	"io"

	"github.com/yourusername/emberhttp/internal/headerparse"
)

// Response is a parsed HTTP/1.1 response head plus a Body reader selected
// according to the framing rules in spec §4.5/§4.6.
type Response struct {
	StatusCode       StatusCode
	Status           Status
	HasContentType   bool
	ContentType      ContentType
	TransferEncodings [maxTransferEncodings]TransferEncoding
	NumTransferEncodings int
	HasKeepAlive     bool
	KeepAlive        KeepAlive
	Extra            ExtraHeaders
	Body             *ResponseBody
}

// IsChunked reports whether the response declared Transfer-Encoding:
// chunked among its codings.
func (r *Response) IsChunked() bool {
	for i := 0; i < r.NumTransferEncodings; i++ {
		if r.TransferEncodings[i] == TransferEncodingChunked {
			return true
		}
	}
	return false
}

// ReadResponse reads and parses a response status line and headers from br,
// then attaches a Body reader picked by the rules in spec §4.6:
//
//   - HEAD requests, informational (1xx) status codes, and 204/304 never
//     have a body, regardless of any Content-Length/Transfer-Encoding
//     headers present; a nonzero declared Content-Length alongside one of
//     those is a Codec error rather than being silently ignored, and an
//     absent one is synthesized as zero.
//   - A declared Content-Length shorter than the body bytes already pulled
//     into the header buffer during parsing is also a Codec error: the
//     framing the server declared can't be honored by data it already sent.
//   - Otherwise Transfer-Encoding: chunked wins if present.
//   - Otherwise a present Content-Length selects fixed-length framing.
//   - Otherwise the body runs to connection close.
func ReadResponse(br *BufferingReader, isHead bool) (*Response, error) {
	var res headerparse.Result
	for {
		parsed, err := headerparse.Parse(br.Buffered())
		if err == nil {
			res = parsed
			break
		}
		if err != headerparse.ErrIncomplete {
			return nil, newErr(ErrKindCodec, err.Error())
		}
		if growErr := br.GrowAndFill(); growErr != nil {
			return nil, growErr
		}
	}
	buf := br.Buffered()

	resp := &Response{StatusCode: StatusCode(res.StatusCode)}
	resp.Status = StatusFromCode(resp.StatusCode)

	contentLength := -1
	hasContentLength := false

	for i := 0; i < res.NumHeaders; i++ {
		h := res.Headers[i]
		name := h.Name.Bytes(buf)
		value := h.Value.Bytes(buf)
		switch {
		case equalFoldBytes(name, []byte("Content-Type")):
			resp.ContentType = ContentTypeFromBytes(value)
			resp.HasContentType = true
		case equalFoldBytes(name, []byte("Content-Length")):
			n, ok := parseDecimal(value)
			if !ok {
				return nil, newErr(ErrKindCodec, "invalid content-length")
			}
			contentLength = n
			hasContentLength = true
		case equalFoldBytes(name, []byte("Transfer-Encoding")):
			for _, tok := range splitComma(value) {
				te, ok := ParseTransferEncoding(tok)
				if !ok {
					return nil, newErr(ErrKindCodec, "unsupported transfer-encoding")
				}
				if resp.NumTransferEncodings >= maxTransferEncodings {
					return nil, newErr(ErrKindCodec, "too many transfer-encodings")
				}
				resp.TransferEncodings[resp.NumTransferEncodings] = te
				resp.NumTransferEncodings++
			}
		case equalFoldBytes(name, []byte("Keep-Alive")):
			ka, err := ParseKeepAlive(value)
			if err != nil {
				return nil, err
			}
			resp.KeepAlive = ka
			resp.HasKeepAlive = true
		default:
			if err := resp.Extra.Add(string(name), string(value)); err != nil {
				return nil, err
			}
		}
	}

	bodyless := isHead || resp.StatusCode.IsInformational() || resp.StatusCode == 204 || resp.StatusCode == 304
	if bodyless && hasContentLength && contentLength != 0 {
		return nil, newErr(ErrKindCodec, "bodyless response declared nonzero content-length")
	}
	if bodyless {
		contentLength = 0
		hasContentLength = true
	}

	if hasContentLength {
		bodyAhead := len(buf) - res.HeadLen
		if bodyAhead > contentLength {
			return nil, newErr(ErrKindCodec, "content-length shorter than already-buffered body")
		}
	}

	br.Discard(res.HeadLen)

	var hint ReaderHint
	switch {
	case bodyless:
		hint = ReaderHintEmpty
	case resp.IsChunked():
		hint = ReaderHintChunked
	case hasContentLength:
		if contentLength == 0 {
			hint = ReaderHintEmpty
		} else {
			hint = ReaderHintFixedLength
		}
	default:
		hint = ReaderHintToEnd
	}

	resp.Body = newResponseBody(hint, br, contentLength)
	return resp, nil
}

func equalFoldBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if 'A' <= x && x <= 'Z' {
			x += 'a' - 'A'
		}
		if 'A' <= y && y <= 'Z' {
			y += 'a' - 'A'
		}
		if x != y {
			return false
		}
	}
	return true
}

func parseDecimal(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func splitComma(b []byte) [][]byte {
	var out [][]byte
	start := 0
	for i := 0; i <= len(b); i++ {
		if i == len(b) || b[i] == ',' {
			out = append(out, trimSpace(b[start:i]))
			start = i + 1
		}
	}
	return out
}

var _ io.Reader = (*ResponseBody)(nil)
