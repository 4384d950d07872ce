package emberhttp

import (
	"bytes"
	"strings"
	"testing"
)

func TestNoBodyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFixedBodyWriter(&buf, 0)
	if err := (NoBody{}).WriteTo(fw); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if err := fw.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestBytesBodyWritesExactData(t *testing.T) {
	var buf bytes.Buffer
	body := BytesBody{Data: []byte("payload")}
	n, ok := body.Len()
	if !ok || n != 7 {
		t.Fatalf("Len() = %d, %v", n, ok)
	}
	fw := NewFixedBodyWriter(&buf, n)
	if err := body.WriteTo(fw); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != "payload" {
		t.Fatalf("buf = %q", buf.String())
	}
}

func TestReaderBodyStreamsThroughChunkedWriter(t *testing.T) {
	var buf bytes.Buffer
	rb := &ReaderBody{Reader: strings.NewReader("streamed data")}
	if _, ok := rb.Len(); ok {
		t.Fatalf("ReaderBody.Len() should report unknown length")
	}
	cw := NewChunkedBodyWriter(&buf)
	if err := rb.WriteTo(cw); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if err := cw.Terminate(); err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	if !strings.Contains(buf.String(), "streamed data") {
		t.Fatalf("buf = %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "0\r\n\r\n") {
		t.Fatalf("buf missing terminal chunk: %q", buf.String())
	}
}
