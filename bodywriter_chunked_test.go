package emberhttp

import (
	"bytes"
	"testing"
)

func TestChunkedBodyWriterSingleChunk(t *testing.T) {
	var buf bytes.Buffer
	w := NewChunkedBodyWriter(&buf)
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Terminate(); err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	want := "5\r\nhello\r\n0\r\n\r\n"
	if buf.String() != want {
		t.Fatalf("buf = %q, want %q", buf.String(), want)
	}
}

func TestChunkedBodyWriterMultipleChunks(t *testing.T) {
	var buf bytes.Buffer
	w := NewChunkedBodyWriter(&buf)
	w.Write([]byte("abc"))
	w.Write([]byte("de"))
	w.Terminate()
	want := "3\r\nabc\r\n2\r\nde\r\n0\r\n\r\n"
	if buf.String() != want {
		t.Fatalf("buf = %q, want %q", buf.String(), want)
	}
}

func TestChunkedBodyWriterEmptyWriteIsNoop(t *testing.T) {
	var buf bytes.Buffer
	w := NewChunkedBodyWriter(&buf)
	if n, err := w.Write(nil); n != 0 || err != nil {
		t.Fatalf("Write(nil) = %d, %v", n, err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no bytes written for empty chunk, got %q", buf.String())
	}
}
