package emberhttp

import (
	"crypto/tls"
	"io"
	"net"

	"github.com/yourusername/emberhttp/internal/tlsconfig"
)

// connKind tags which variant of Connection is active. A tagged union
// rather than an interface with three implementations keeps the common
// plaintext path monomorphic and avoids a vtable indirection on every read
// and write (spec §4.8, grounded on the teacher's client.go connection
// handling and its Plain/Tls split in tls/config.go).
type connKind uint8

const (
	connKindPlain connKind = iota
	connKindPlainBuffered
	connKindTLS
)

// Connection is the facade every request is sent over: a raw TCP socket, a
// TCP socket wrapped in a BufferedWriter, or a TLS-wrapped socket. Callers
// obtain one from Dial or DialTLS and never need to branch on the
// underlying transport themselves.
type Connection struct {
	kind   connKind
	conn   net.Conn
	buffer *BufferedWriter
	trace  func(event string)
}

// Dial opens a plaintext TCP connection to addr (host:port).
func Dial(addr string) (*Connection, error) {
	c, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, wrapErr(ErrKindNetwork, err)
	}
	return &Connection{kind: connKindPlain, conn: c}, nil
}

// DialBuffered opens a plaintext TCP connection and wraps its writes in a
// BufferedWriter backed by writeBuf, coalescing the encoder's many small
// writes into fewer syscalls.
func DialBuffered(addr string, writeBuf []byte) (*Connection, error) {
	c, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, wrapErr(ErrKindNetwork, err)
	}
	return &Connection{kind: connKindPlainBuffered, conn: c, buffer: NewBufferedWriter(c, writeBuf)}, nil
}

// DialTLS opens a TCP connection and performs a TLS handshake using cfg.
func DialTLS(addr, serverName string, cfg *tlsconfig.Config) (*Connection, error) {
	raw, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, wrapErr(ErrKindNetwork, err)
	}
	if cfg == nil {
		cfg = tlsconfig.New()
	}
	tlsCfg := cfg.WithServerName(serverName).Build()
	tc := tls.Client(raw, tlsCfg)
	if err := tc.Handshake(); err != nil {
		raw.Close()
		return nil, wrapErr(ErrKindTLS, err)
	}
	return &Connection{kind: connKindTLS, conn: tc}, nil
}

// SetTrace installs an optional diagnostic hook invoked with short event
// names (Send emits "request_start" and "request_sent"). It is the only observability
// surface the core exposes; full logging is left to the caller (spec §1).
func (c *Connection) SetTrace(fn func(event string)) { c.trace = fn }

func (c *Connection) trigger(event string) {
	if c.trace != nil {
		c.trace(event)
	}
}

// Write implements io.Writer, routing through the BufferedWriter for the
// PlainBuffered variant and directly to the socket otherwise.
func (c *Connection) Write(p []byte) (int, error) {
	if c.kind == connKindPlainBuffered {
		return c.buffer.Write(p)
	}
	n, err := c.conn.Write(p)
	if err != nil {
		return n, wrapErr(ErrKindNetwork, err)
	}
	return n, nil
}

// Flush pushes any buffered writes to the socket. It is a no-op for
// variants that don't buffer.
func (c *Connection) Flush() error {
	if c.kind == connKindPlainBuffered {
		return c.buffer.Flush()
	}
	return nil
}

// Read implements io.Reader directly off the socket; response reading
// always goes through a BufferingReader on top of Connection regardless of
// which write variant was used, so there is no PlainBuffered-specific read
// path to maintain.
func (c *Connection) Read(p []byte) (int, error) {
	n, err := c.conn.Read(p)
	if err != nil && err != io.EOF {
		return n, wrapErr(ErrKindNetwork, err)
	}
	return n, err
}

// Close closes the underlying socket.
func (c *Connection) Close() error {
	return c.conn.Close()
}

// Send writes req's head and body to the connection, flushing any buffered
// writer afterward so the request is fully on the wire before the caller
// reads a response (spec §4.8).
//
// The body-writer variant is chosen from the connection's own kind, not
// from anything the caller passes in: Plain and TLS connections stream an
// unknown-length body with the unbuffered ChunkedBodyWriter (§4.3), while
// PlainBuffered takes over its BufferedWriter's staging buffer — which
// already holds the just-written request head — and hands it to a
// BufferingChunkedBodyWriter so the head, the first chunk, and the trailer
// all leave the socket in a single write (§4.4, §4.8).
func (c *Connection) Send(req *Request) error {
	c.trigger("request_start")
	if err := WriteRequestLine(c, req); err != nil {
		return err
	}
	if err := WriteHeaders(c, req); err != nil {
		return err
	}
	if req.Body != nil {
		if n, ok := req.Body.Len(); ok && n > 0 {
			fw := NewFixedBodyWriter(c, n)
			if err := req.Body.WriteTo(fw); err != nil {
				return err
			}
			if err := fw.Finish(); err != nil {
				return err
			}
		} else if !ok {
			if c.kind == connKindPlainBuffered {
				buf, written := c.buffer.TakeStaged()
				bw, err := NewBufferingChunkedBodyWriter(c.buffer.Underlying(), buf, written)
				if err != nil {
					return err
				}
				if err := req.Body.WriteTo(bw); err != nil {
					return err
				}
				if err := bw.Terminate(); err != nil {
					return err
				}
			} else {
				cw := NewChunkedBodyWriter(c)
				if err := req.Body.WriteTo(cw); err != nil {
					return err
				}
				if err := cw.Terminate(); err != nil {
					return err
				}
			}
		}
	}
	if err := c.Flush(); err != nil {
		return err
	}
	c.trigger("request_sent")
	return nil
}
