package emberhttp

import "io"

// NoBody is the RequestBody for requests that carry no payload (GET, DELETE,
// HEAD). It writes nothing and reports a known length of zero.
type NoBody struct{}

func (NoBody) Len() (int, bool)          { return 0, true }
func (NoBody) WriteTo(w BodyWriter) error { return nil }

// BytesBody is a RequestBody backed by a caller-owned byte slice whose
// length is known up front, so it is always sent with a fixed
// Content-Length rather than chunked framing (spec §4.2).
type BytesBody struct {
	Data []byte
}

func (b BytesBody) Len() (int, bool) { return len(b.Data), true }

func (b BytesBody) WriteTo(w BodyWriter) error {
	n, err := w.Write(b.Data)
	if err != nil {
		return err
	}
	if n != len(b.Data) {
		return ErrIncorrectBodyWritten
	}
	return nil
}

// ReaderBody is a RequestBody backed by an io.Reader of unknown length. It
// always forces chunked transfer encoding (spec §4.3/§4.4) since the total
// size cannot be known until the reader is exhausted.
type ReaderBody struct {
	Reader     io.Reader
	chunkBuf   [512]byte
}

func (r *ReaderBody) Len() (int, bool) { return 0, false }

func (r *ReaderBody) WriteTo(w BodyWriter) error {
	for {
		n, err := r.Reader.Read(r.chunkBuf[:])
		if n > 0 {
			if _, werr := w.Write(r.chunkBuf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return wrapErr(ErrKindNetwork, err)
		}
	}
}
