package emberhttp

import "io"

// FixedBodyWriter writes a request body of a length declared up front via
// Content-Length. It tallies every byte written and refuses to let the
// caller write more than was declared, catching framing bugs before they
// reach the wire (spec §4.2, grounded on original_source/src/body_writer.rs
// FixedBodyWriter).
type FixedBodyWriter struct {
	w         io.Writer
	declared  int
	written   int
}

// NewFixedBodyWriter wraps w, enforcing that exactly declared bytes are
// written before Finish is called.
func NewFixedBodyWriter(w io.Writer, declared int) *FixedBodyWriter {
	return &FixedBodyWriter{w: w, declared: declared}
}

func (f *FixedBodyWriter) Write(p []byte) (int, error) {
	remaining := f.declared - f.written
	if remaining <= 0 {
		return 0, newErr(ErrKindCodec, "fixed body writer: wrote past declared length")
	}
	if len(p) > remaining {
		p = p[:remaining]
	}
	n, err := f.w.Write(p)
	f.written += n
	if err != nil {
		return n, wrapErr(ErrKindNetwork, err)
	}
	return n, nil
}

// Finish verifies the declared byte count was written exactly. A short
// write surfaces as ErrIncorrectBodyWritten so the caller never silently
// sends a truncated, framing-inconsistent request.
func (f *FixedBodyWriter) Finish() error {
	if f.written != f.declared {
		return ErrIncorrectBodyWritten
	}
	return nil
}
