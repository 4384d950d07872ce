package emberhttp

import "testing"

func TestContentTypeFromBytes(t *testing.T) {
	cases := []struct {
		in   string
		want ContentType
	}{
		{"text/plain", ContentTypeTextPlain},
		{"text/plain; charset=utf-8", ContentTypeTextPlain},
		{"text/html", ContentTypeTextHTML},
		{"application/json", ContentTypeApplicationJSON},
		{"application/cbor", ContentTypeApplicationCBOR},
		{"application/xml", ContentTypeOctetStream},
		{"", ContentTypeOctetStream},
	}
	for _, c := range cases {
		if got := ContentTypeFromBytes([]byte(c.in)); got != c.want {
			t.Errorf("ContentTypeFromBytes(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestContentTypeString(t *testing.T) {
	if ContentTypeApplicationJSON.String() != "application/json" {
		t.Fatalf("unexpected string: %s", ContentTypeApplicationJSON.String())
	}
}
