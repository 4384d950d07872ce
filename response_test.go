package emberhttp

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReadResponseFixedLength(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Length: 11\r\nContent-Type: text/plain\r\n\r\nhello world"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	resp, err := ReadResponse(br, false)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if resp.StatusCode != 200 || resp.Status != StatusOK {
		t.Fatalf("status = %d/%v", resp.StatusCode, resp.Status)
	}
	if resp.Body.Hint() != ReaderHintFixedLength {
		t.Fatalf("hint = %v, want fixed length", resp.Body.Hint())
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "hello world" {
		t.Fatalf("body = %q", body)
	}
}

func TestReadResponseChunked(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nhello\r\n0\r\n\r\n"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	resp, err := ReadResponse(br, false)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if resp.Body.Hint() != ReaderHintChunked {
		t.Fatalf("hint = %v, want chunked", resp.Body.Hint())
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "hello" {
		t.Fatalf("body = %q", body)
	}
}

func TestReadResponseNoContentZeroLength(t *testing.T) {
	raw := "HTTP/1.1 204 No Content\r\nContent-Length: 0\r\n\r\n"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	resp, err := ReadResponse(br, false)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if resp.Body.Hint() != ReaderHintEmpty {
		t.Fatalf("hint = %v, want empty", resp.Body.Hint())
	}
}

func TestReadResponseNoContentNonzeroLengthIsCodecError(t *testing.T) {
	raw := "HTTP/1.1 204 No Content\r\nContent-Length: 5\r\n\r\nhello"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	_, err := ReadResponse(br, false)
	if err == nil {
		t.Fatalf("expected a codec error for 204 with nonzero content-length")
	}
	var emberErr *Error
	if !errors.As(err, &emberErr) || emberErr.Kind != ErrKindCodec {
		t.Fatalf("err = %v, want ErrKindCodec", err)
	}
}

func TestReadResponseHeadIsAlwaysBodyless(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	resp, err := ReadResponse(br, true)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if resp.Body.Hint() != ReaderHintEmpty {
		t.Fatalf("hint = %v, want empty for HEAD", resp.Body.Hint())
	}
}

func TestReadResponseInformationalIsAlwaysBodyless(t *testing.T) {
	raw := "HTTP/1.1 100 Continue\r\n\r\n"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	resp, err := ReadResponse(br, false)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if resp.Body.Hint() != ReaderHintEmpty {
		t.Fatalf("hint = %v, want empty for a 100 Continue", resp.Body.Hint())
	}
}

func TestReadResponseInformationalNonzeroLengthIsCodecError(t *testing.T) {
	raw := "HTTP/1.1 100 Continue\r\nContent-Length: 5\r\n\r\nhello"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	_, err := ReadResponse(br, false)
	if err == nil {
		t.Fatalf("expected a codec error for 100 Continue with nonzero content-length")
	}
	var emberErr *Error
	if !errors.As(err, &emberErr) || emberErr.Kind != ErrKindCodec {
		t.Fatalf("err = %v, want ErrKindCodec", err)
	}
}

func TestReadResponseContentLengthShorterThanBufferedBodyIsCodecError(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nhello world"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	_, err := ReadResponse(br, false)
	if err == nil {
		t.Fatalf("expected a codec error when content-length undercounts buffered body")
	}
	var emberErr *Error
	if !errors.As(err, &emberErr) || emberErr.Kind != ErrKindCodec {
		t.Fatalf("err = %v, want ErrKindCodec", err)
	}
}

func TestReadResponseToEnd(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n\r\nstream until close"
	br := NewBufferingReader(bytes.NewReader([]byte(raw)), make([]byte, 256))
	resp, err := ReadResponse(br, false)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if resp.Body.Hint() != ReaderHintToEnd {
		t.Fatalf("hint = %v, want to-end", resp.Body.Hint())
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "stream until close" {
		t.Fatalf("body = %q", body)
	}
}
