package emberhttp

import "bytes"

// maxExtraHeaders bounds the number of caller-supplied extra headers a
// Request can carry inline, keeping Request itself a fixed-size value
// (spec §3: "a small, bounded list of extra headers").
const maxExtraHeaders = 8

// ExtraHeader is a single caller-supplied name/value pair appended verbatim
// after the headers the encoder generates itself (spec §4.1).
type ExtraHeader struct {
	Name  string
	Value string
}

// ExtraHeaders is a fixed-capacity, order-preserving list of ExtraHeader
// pairs. The zero value is an empty list.
type ExtraHeaders struct {
	items [maxExtraHeaders]ExtraHeader
	n     int
}

// Add appends a header pair, returning ErrKindBufferTooSmall if the list is
// already at capacity.
func (h *ExtraHeaders) Add(name, value string) error {
	if h.n >= maxExtraHeaders {
		return newErr(ErrKindBufferTooSmall, "too many extra headers")
	}
	h.items[h.n] = ExtraHeader{Name: name, Value: value}
	h.n++
	return nil
}

// Len returns the number of headers currently stored.
func (h *ExtraHeaders) Len() int { return h.n }

// At returns the i-th header pair. It panics if i is out of range, mirroring
// slice indexing semantics.
func (h *ExtraHeaders) At(i int) ExtraHeader { return h.items[i] }

// Get returns the value of the first header matching name, case-insensitive,
// and whether it was found.
func (h *ExtraHeaders) Get(name string) (string, bool) {
	for i := 0; i < h.n; i++ {
		if equalFoldString(h.items[i].Name, name) {
			return h.items[i].Value, true
		}
	}
	return "", false
}

func equalFoldString(a, b string) bool {
	return bytes.EqualFold([]byte(a), []byte(b))
}
