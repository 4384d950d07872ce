package emberhttp

import (
	"io"
	"strconv"
)

// ChunkedBodyWriter streams a request body as HTTP chunked transfer
// encoding without buffering: every call to Write emits exactly three
// writes to the underlying connection — the hex chunk-size line, the chunk
// data, and the trailing CRLF (spec §4.3, grounded on
// original_source/src/body_writer/chunked.rs). Terminate closes the body
// with the zero-length final chunk.
type ChunkedBodyWriter struct {
	w io.Writer
}

// NewChunkedBodyWriter wraps w for streaming chunked output.
func NewChunkedBodyWriter(w io.Writer) *ChunkedBodyWriter {
	return &ChunkedBodyWriter{w: w}
}

// Write emits p as a single chunk. An empty p is a no-op: a zero-length
// chunk here would prematurely terminate the body, so callers wanting to
// end the body call Terminate instead.
func (c *ChunkedBodyWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	size := strconv.FormatInt(int64(len(p)), 16)
	if _, err := io.WriteString(c.w, size+crlf); err != nil {
		return 0, wrapErr(ErrKindNetwork, err)
	}
	n, err := c.w.Write(p)
	if err != nil {
		return n, wrapErr(ErrKindNetwork, err)
	}
	if n != len(p) {
		return n, ErrIncorrectBodyWritten
	}
	if _, err := io.WriteString(c.w, crlf); err != nil {
		return n, wrapErr(ErrKindNetwork, err)
	}
	return n, nil
}

// Terminate writes the final zero-length chunk and trailer-less closing
// CRLF, ending the chunked body.
func (c *ChunkedBodyWriter) Terminate() error {
	if _, err := io.WriteString(c.w, "0"+crlf+crlf); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	return nil
}
