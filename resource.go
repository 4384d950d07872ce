package emberhttp

import "strings"

// Resource pins a Connection to a host and an optional base path, so
// repeated calls against the same logical endpoint don't have to respecify
// either (spec §4.8, grounded on the teacher's client.go Client/Resource
// split).
type Resource struct {
	Conn     *Connection
	Host     string
	BasePath string
}

// NewResource pins conn to host, with requests' paths resolved relative to
// basePath.
func NewResource(conn *Connection, host, basePath string) *Resource {
	return &Resource{Conn: conn, Host: host, BasePath: basePath}
}

// Request builds a Request targeting path relative to the resource's base
// path and host, ready for Send. The base path's trailing slashes are
// trimmed and exactly one slash is inserted before path (spec §4.1), so
// BasePath "/v1/" or "/v1" joined with "/items" both resolve to
// "/v1/items".
func (r *Resource) Request(method Method, path string) Request {
	return NewRequest(method, r.Host, joinPath(r.BasePath, path))
}

func joinPath(basePath, path string) string {
	basePath = strings.TrimRight(basePath, "/")
	if basePath == "" {
		if path == "" {
			return "/"
		}
		if strings.HasPrefix(path, "/") {
			return path
		}
		return "/" + path
	}
	return basePath + "/" + strings.TrimLeft(path, "/")
}

// Send writes req over the resource's connection.
func (r *Resource) Send(req *Request) error {
	return r.Conn.Send(req)
}

// Receive reads the response to a request previously sent with Send.
// isHead must reflect whether the just-sent request used Method HEAD, since
// HEAD responses are bodyless regardless of any Content-Length header.
func (r *Resource) Receive(br *BufferingReader, isHead bool) (*Response, error) {
	return ReadResponse(br, isHead)
}
