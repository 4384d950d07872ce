package emberhttp

// ContentType is a small closed set of media types. ContentTypeFromBytes is a
// total mapping: any byte string that isn't one of the known types collapses
// to ContentTypeOctetStream rather than being rejected (spec §3, §9 Open
// Question — round-tripping unknown media types verbatim is left unanswered
// by the source and is not implemented here; see DESIGN.md).
type ContentType uint8

const (
	ContentTypeTextPlain ContentType = iota
	ContentTypeTextHTML
	ContentTypeApplicationJSON
	ContentTypeApplicationCBOR
	ContentTypeOctetStream
)

var contentTypeStrings = [...]string{
	ContentTypeTextPlain:       "text/plain",
	ContentTypeTextHTML:        "text/html",
	ContentTypeApplicationJSON: "application/json",
	ContentTypeApplicationCBOR: "application/cbor",
	ContentTypeOctetStream:     "application/octet-stream",
}

// String returns the wire representation of the content type.
func (c ContentType) String() string {
	if int(c) < len(contentTypeStrings) {
		return contentTypeStrings[c]
	}
	return contentTypeStrings[ContentTypeOctetStream]
}

// ContentTypeFromBytes maps a raw Content-Type header value (ignoring any
// ";charset=..." parameters) to the closed ContentType set, defaulting to
// ContentTypeOctetStream for anything it doesn't recognize.
func ContentTypeFromBytes(b []byte) ContentType {
	if i := indexByte(b, ';'); i >= 0 {
		b = b[:i]
	}
	b = trimSpace(b)
	switch string(b) {
	case "text/plain":
		return ContentTypeTextPlain
	case "text/html":
		return ContentTypeTextHTML
	case "application/json":
		return ContentTypeApplicationJSON
	case "application/cbor":
		return ContentTypeApplicationCBOR
	default:
		return ContentTypeOctetStream
	}
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

func trimSpace(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}
