package emberhttp

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteRequestLineDefaultsToRoot(t *testing.T) {
	var buf bytes.Buffer
	req := NewRequest(MethodGET, "example.com", "")
	if err := WriteRequestLine(&buf, &req); err != nil {
		t.Fatalf("WriteRequestLine: %v", err)
	}
	if buf.String() != "GET / HTTP/1.1\r\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWriteHeadersNoBodyOrderAndContentLengthZero(t *testing.T) {
	var buf bytes.Buffer
	req := NewRequest(MethodGET, "example.com", "/foo")
	if err := WriteHeaders(&buf, &req); err != nil {
		t.Fatalf("WriteHeaders: %v", err)
	}
	want := "Host: example.com\r\nContent-Length: 0\r\n\r\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteHeadersOmitsHostAndAcceptWhenUnset(t *testing.T) {
	var buf bytes.Buffer
	req := NewRequest(MethodPOST, "", "/")
	if err := WriteHeaders(&buf, &req); err != nil {
		t.Fatalf("WriteHeaders: %v", err)
	}
	want := "Content-Length: 0\r\n\r\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteHeadersAcceptWhenSet(t *testing.T) {
	var buf bytes.Buffer
	req := NewRequest(MethodGET, "example.com", "/").WithAccept("application/json")
	if err := WriteHeaders(&buf, &req); err != nil {
		t.Fatalf("WriteHeaders: %v", err)
	}
	if !strings.Contains(buf.String(), "Accept: application/json\r\n") {
		t.Fatalf("expected Accept: application/json in %q", buf.String())
	}
}

func TestWriteHeadersAuthComesFirst(t *testing.T) {
	var buf bytes.Buffer
	req := NewRequest(MethodGET, "example.com", "/").WithAuth("alice", "hunter2")
	if err := WriteHeaders(&buf, &req); err != nil {
		t.Fatalf("WriteHeaders: %v", err)
	}
	lines := strings.Split(buf.String(), "\r\n")
	if !strings.HasPrefix(lines[0], "Authorization: Basic ") {
		t.Fatalf("first header = %q, want Authorization first", lines[0])
	}
	if lines[1] != "Host: example.com" {
		t.Fatalf("second header = %q, want Host", lines[1])
	}
}

func TestWriteHeadersKnownLengthBody(t *testing.T) {
	var buf bytes.Buffer
	req := NewRequest(MethodPOST, "example.com", "/items").
		WithContentType(ContentTypeApplicationJSON).
		WithBody(BytesBody{Data: []byte(`{"a":1}`)})
	if err := WriteHeaders(&buf, &req); err != nil {
		t.Fatalf("WriteHeaders: %v", err)
	}
	if !strings.Contains(buf.String(), "Content-Length: 7\r\n") {
		t.Fatalf("expected Content-Length: 7 in %q", buf.String())
	}
	if strings.Contains(buf.String(), "Transfer-Encoding") {
		t.Fatalf("did not expect Transfer-Encoding for a known-length body")
	}
}

func TestWriteHeadersUnknownLengthBodyUsesChunked(t *testing.T) {
	var buf bytes.Buffer
	req := NewRequest(MethodPOST, "example.com", "/items").
		WithBody(&ReaderBody{Reader: strings.NewReader("streamed")})
	if err := WriteHeaders(&buf, &req); err != nil {
		t.Fatalf("WriteHeaders: %v", err)
	}
	if !strings.Contains(buf.String(), "Transfer-Encoding: chunked\r\n") {
		t.Fatalf("expected Transfer-Encoding: chunked in %q", buf.String())
	}
	if strings.Contains(buf.String(), "Content-Length") {
		t.Fatalf("did not expect Content-Length for a chunked body")
	}
}

func TestWriteHeadersExtrasAppendedInOrder(t *testing.T) {
	var buf bytes.Buffer
	req := NewRequest(MethodGET, "example.com", "/")
	req.Extra.Add("X-One", "1")
	req.Extra.Add("X-Two", "2")
	if err := WriteHeaders(&buf, &req); err != nil {
		t.Fatalf("WriteHeaders: %v", err)
	}
	one := strings.Index(buf.String(), "X-One: 1")
	two := strings.Index(buf.String(), "X-Two: 2")
	if one < 0 || two < 0 || two < one {
		t.Fatalf("extras not in order: %q", buf.String())
	}
}
