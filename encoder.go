package emberhttp

import (
	"encoding/base64"
	"io"
	"strconv"
)

// WriteHeaders writes generated headers in a fixed sequence
// (spec §4.1): Authorization first (so a proxy inspecting only the first
// header sees auth immediately), then Host, then Content-Type, then Accept,
// then exactly one of Content-Length/Transfer-Encoding, then the caller's
// extra headers verbatim and in the order they were added.
const crlf = "\r\n"

// WriteRequestLine writes "METHOD /path HTTP/1.1\r\n" to w.
func WriteRequestLine(w io.Writer, req *Request) error {
	if _, err := io.WriteString(w, req.Method.String()); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	if _, err := io.WriteString(w, " "); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	path := req.Path
	if path == "" {
		path = "/"
	}
	if _, err := io.WriteString(w, path); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	if _, err := io.WriteString(w, " HTTP/1.1"+crlf); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	return nil
}

func writeHeaderLine(w io.Writer, name, value string) error {
	if _, err := io.WriteString(w, name); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	if _, err := io.WriteString(w, ": "); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	if _, err := io.WriteString(w, value); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	_, err := io.WriteString(w, crlf)
	if err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	return nil
}

// WriteHeaders writes every header for req, ending with the blank line that
// terminates the header block, in the fixed order described above. It does
// not write the body; callers use bodywriter_*.go to stream it afterward.
func WriteHeaders(w io.Writer, req *Request) error {
	if req.Auth != nil {
		raw := req.Auth.Username + ":" + req.Auth.Password
		enc := base64.StdEncoding.EncodeToString([]byte(raw))
		if err := writeHeaderLine(w, "Authorization", "Basic "+enc); err != nil {
			return err
		}
	}

	if req.Host != "" {
		if err := writeHeaderLine(w, "Host", req.Host); err != nil {
			return err
		}
	}

	if req.HasContentType {
		if err := writeHeaderLine(w, "Content-Type", req.ContentType.String()); err != nil {
			return err
		}
	}

	if req.HasAccept {
		if err := writeHeaderLine(w, "Accept", req.Accept); err != nil {
			return err
		}
	}

	if req.Body != nil {
		if n, ok := req.Body.Len(); ok {
			if err := writeHeaderLine(w, "Content-Length", strconv.Itoa(n)); err != nil {
				return err
			}
		} else {
			if err := writeHeaderLine(w, "Transfer-Encoding", "chunked"); err != nil {
				return err
			}
		}
	} else {
		if err := writeHeaderLine(w, "Content-Length", "0"); err != nil {
			return err
		}
	}

	for i := 0; i < req.Extra.Len(); i++ {
		h := req.Extra.At(i)
		if err := writeHeaderLine(w, h.Name, h.Value); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, crlf); err != nil {
		return wrapErr(ErrKindNetwork, err)
	}
	return nil
}
