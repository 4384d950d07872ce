package emberhttp

import (
	"compress/flate"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
)

// ContentEncoding names a response body compression the server may have
// applied at the HTTP layer (distinct from TransferEncoding, which governs
// wire framing rather than payload compression). Decoding these is an
// opt-in convenience the core never does automatically, keeping the
// allocation-free read path intact for callers who don't need it (spec §B
// domain stack: the decompression libraries get a home here rather than on
// the hot path).
type ContentEncoding uint8

const (
	ContentEncodingIdentity ContentEncoding = iota
	ContentEncodingGzip
	ContentEncodingDeflate
	ContentEncodingBrotli
)

// ParseContentEncoding maps a Content-Encoding header value to the closed
// set this package knows how to decode.
func ParseContentEncoding(b []byte) (ContentEncoding, bool) {
	switch string(trimSpace(b)) {
	case "identity", "":
		return ContentEncodingIdentity, true
	case "gzip":
		return ContentEncodingGzip, true
	case "deflate":
		return ContentEncodingDeflate, true
	case "br":
		return ContentEncodingBrotli, true
	default:
		return 0, false
	}
}

// DecodeBody wraps a ResponseBody's Read stream with the decompressor
// matching enc. Decoding a gzip, deflate or brotli stream allocates the
// decompressor's internal window buffers (this is an explicit tradeoff the
// caller opts into; see DESIGN.md), unlike the rest of the read path.
func DecodeBody(r io.Reader, enc ContentEncoding) (io.Reader, error) {
	switch enc {
	case ContentEncodingIdentity:
		return r, nil
	case ContentEncodingGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, wrapErr(ErrKindCodec, err)
		}
		return gz, nil
	case ContentEncodingDeflate:
		return flate.NewReader(r), nil
	case ContentEncodingBrotli:
		return brotli.NewReader(r), nil
	default:
		return nil, newErr(ErrKindCodec, "unsupported content-encoding")
	}
}
