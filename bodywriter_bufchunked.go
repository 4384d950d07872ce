package emberhttp

import (
	"io"
	"strconv"
)

// BufferingChunkedBodyWriter stages chunk data in a caller-owned buffer and
// flushes it as a single write once the buffer fills or Terminate is
// called, trading a little buffer space for far fewer socket writes than
// ChunkedBodyWriter — the right tradeoff when many small body writes would
// otherwise mean many small syscalls (spec §4.4, grounded on
// original_source/src/body_writer/buffering_chunked.rs, new_with_data).
//
// The buffer may arrive with a prefix already staged at buf[0:written] (the
// request line and headers, written there by whatever staged them before
// handing the buffer off here). The chunk-size header slot is reserved
// immediately after that prefix rather than at index 0, so the very first
// flush can put the prefix and the first chunk's header, data, and trailer
// on the wire in a single write — the entire reason this writer exists
// instead of always using ChunkedBodyWriter.
//
// The buffer layout while a chunk is being staged is:
//
//	[ written-byte prefix | reserved header (headerW bytes) | chunk data (dataLen bytes) | 2 bytes reserved for trailing CRLF ]
//
// The reserved header is wide enough for the hex digits of the largest
// chunk this buffer could ever hold, plus its own CRLF. A chunk's actual hex
// size almost always needs fewer digits than that worst case, so finalizing
// a chunk writes the digits immediately after the prefix (left-aligned, not
// right-aligned within the reserved slot) and then memmoves the chunk data
// left to close the gap this leaves before the data.
type BufferingChunkedBodyWriter struct {
	w             io.Writer
	buf           []byte
	written       int
	headerPos     int
	headerW       int
	dataStart     int
	dataLen       int
	prefixPending bool
}

// NewBufferingChunkedBodyWriter wraps w, staging chunk data into buf after
// the written-byte prefix already present at buf[0:written]. Pass written 0
// when there is no prefix to preserve. buf must be large enough, past the
// prefix, to hold the chunk-size header, at least one byte of data, and the
// trailing CRLF; see maxChunkHeaderSize.
func NewBufferingChunkedBodyWriter(w io.Writer, buf []byte, written int) (*BufferingChunkedBodyWriter, error) {
	if written < 0 || written > len(buf) {
		return nil, newErr(ErrKindBufferTooSmall, "written prefix out of range for buffer")
	}
	hw := maxChunkHeaderSize(len(buf) - written)
	dataStart := written + hw
	if len(buf)-dataStart-2 <= 0 {
		return nil, newErr(ErrKindBufferTooSmall, "buffer too small for chunked framing")
	}
	return &BufferingChunkedBodyWriter{
		w:             w,
		buf:           buf,
		written:       written,
		headerPos:     written,
		headerW:       hw,
		dataStart:     dataStart,
		prefixPending: written > 0,
	}, nil
}

// maxChunkHeaderSize returns the number of bytes to reserve for a chunk-size
// header (hex digits plus trailing CRLF) given n bytes of buffer available
// past any prefix. The "-4" headroom accounts for the trailing CRLF (2
// bytes) this function's own result reserves plus the 2-byte CRLF that
// follows the chunk data, so the hex digit count is sized against the data
// capacity the buffer can actually offer rather than against n itself.
func maxChunkHeaderSize(n int) int {
	if n < 4 {
		return 0
	}
	return hexDigitCount(n-4) + 2
}

func hexDigitCount(v int) int {
	if v <= 0 {
		return 1
	}
	d := 0
	for v > 0 {
		d++
		v >>= 4
	}
	return d
}

// Write stages p into the internal buffer, flushing whenever it fills.
func (c *BufferingChunkedBodyWriter) Write(p []byte) (int, error) {
	maxData := len(c.buf) - c.dataStart - 2
	total := 0
	for len(p) > 0 {
		room := maxData - c.dataLen
		if room <= 0 {
			if err := c.flush(); err != nil {
				return total, err
			}
			room = maxData
		}
		n := len(p)
		if n > room {
			n = room
		}
		copy(c.buf[c.dataStart+c.dataLen:], p[:n])
		c.dataLen += n
		p = p[n:]
		total += n
	}
	return total, nil
}

// Flush forces any currently staged chunk data onto the wire immediately,
// without waiting for the buffer to fill.
func (c *BufferingChunkedBodyWriter) Flush() error { return c.flush() }

func (c *BufferingChunkedBodyWriter) flush() error {
	if c.dataLen == 0 {
		if c.prefixPending {
			if _, err := c.w.Write(c.buf[:c.written]); err != nil {
				return wrapErr(ErrKindNetwork, err)
			}
			c.prefixPending = false
		}
		return nil
	}

	hexStr := strconv.FormatInt(int64(c.dataLen), 16)
	digits := len(hexStr)
	headerDigits := c.headerW - 2
	if digits > headerDigits {
		return newErr(ErrKindCodec, "buffering chunked writer: chunk exceeds reserved header width")
	}

	copy(c.buf[c.headerPos:c.headerPos+digits], hexStr)
	c.buf[c.headerPos+digits] = '\r'
	c.buf[c.headerPos+digits+1] = '\n'

	newDataStart := c.headerPos + digits + 2
	if newDataStart != c.dataStart {
		copy(c.buf[newDataStart:newDataStart+c.dataLen], c.buf[c.dataStart:c.dataStart+c.dataLen])
	}

	trailerStart := newDataStart + c.dataLen
	c.buf[trailerStart] = '\r'
	c.buf[trailerStart+1] = '\n'

	regionStart := c.headerPos
	if c.prefixPending {
		regionStart = 0
		c.prefixPending = false
	}

	region := c.buf[regionStart : trailerStart+2]
	n, err := c.w.Write(region)
	if err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	if n != len(region) {
		return ErrIncorrectBodyWritten
	}
	c.dataLen = 0
	return nil
}

// Terminate flushes any remaining staged data (or the still-pending prefix,
// for a body with no chunks at all) and writes the final zero-length chunk
// that ends the body.
func (c *BufferingChunkedBodyWriter) Terminate() error {
	if err := c.flush(); err != nil {
		return err
	}
	if _, err := io.WriteString(c.w, "0"+crlf+crlf); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	return nil
}
