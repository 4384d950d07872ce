package emberhttp

import "io"

// BufferedWriter coalesces the many small writes the encoder and body
// writers issue (a header line at a time, a chunk at a time) into fewer,
// larger writes to the underlying connection. Unlike bufio.Writer it never
// allocates: the caller supplies the buffer, and bytes leave the process
// only when the buffer fills, on Flush, or when a single write is too large
// to stage and bypasses the buffer (spec §2, grounded on the
// teacher's client/buffer.go SmallBufferPool usage pattern).
type BufferedWriter struct {
	w   io.Writer
	buf []byte
	n   int
}

// NewBufferedWriter wraps w, staging writes into buf until it fills or
// Flush is called.
func NewBufferedWriter(w io.Writer, buf []byte) *BufferedWriter {
	return &BufferedWriter{w: w, buf: buf}
}

// Write stages p, flushing as needed when it would overflow the buffer. A
// write larger than the whole buffer bypasses staging and goes straight to
// the underlying writer once any pending bytes are flushed first, to
// preserve ordering.
func (b *BufferedWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		room := len(b.buf) - b.n
		if room == 0 {
			if err := b.Flush(); err != nil {
				return total, err
			}
			room = len(b.buf)
		}
		if len(p) >= len(b.buf) && b.n == 0 {
			n, err := b.w.Write(p)
			total += n
			if err != nil {
				return total, wrapErr(ErrKindNetwork, err)
			}
			return total, nil
		}
		n := len(p)
		if n > room {
			n = room
		}
		copy(b.buf[b.n:], p[:n])
		b.n += n
		p = p[n:]
		total += n
	}
	return total, nil
}

// Flush writes any staged bytes to the underlying writer.
func (b *BufferedWriter) Flush() error {
	if b.n == 0 {
		return nil
	}
	n, err := b.w.Write(b.buf[:b.n])
	if err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	if n != b.n {
		return ErrIncorrectBodyWritten
	}
	b.n = 0
	return nil
}

// Underlying returns the writer b stages bytes toward, letting a caller that
// takes over staging (see TakeStaged) flush directly to the same sink.
func (b *BufferedWriter) Underlying() io.Writer { return b.w }

// TakeStaged hands the caller b's staging buffer along with the number of
// bytes currently staged in it, and resets b as if it had just been
// flushed. It exists for BufferingChunkedBodyWriter (spec §4.8): a
// PlainBuffered connection stages a request's header through b, then takes
// over that same buffer to append the first chunk right after the header
// bytes, so header and chunk leave the socket in one write instead of two.
func (b *BufferedWriter) TakeStaged() ([]byte, int) {
	buf, n := b.buf, b.n
	b.n = 0
	return buf, n
}
