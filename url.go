package emberhttp

import (
	"net/url"
	"strconv"

	"golang.org/x/net/idna"
)

// URLScheme is the closed set of schemes this client dials: plaintext or
// TLS (spec §3, §C: ported from original_source/src/url.rs UrlScheme).
type URLScheme uint8

const (
	URLSchemeHTTP URLScheme = iota
	URLSchemeHTTPS
)

func (s URLScheme) defaultPort() int {
	if s == URLSchemeHTTPS {
		return 443
	}
	return 80
}

// URL is a parsed "scheme://host[:port][/path]" target, reduced to just the
// fields the connection layer needs: which scheme to dial with, the ASCII
// host to present in TLS SNI and the Host header, the port to dial, and the
// path to request (original_source/src/url.rs supplemented this beyond what
// spec.md's distillation carried forward).
type URL struct {
	Scheme URLScheme
	Host   string
	Port   int
	Path   string
}

// ParseURL parses raw into a URL, normalizing the host through IDNA so
// internationalized domain names dial correctly, and defaulting the port
// from the scheme when none is given.
func ParseURL(raw string) (URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return URL{}, wrapErr(ErrKindInvalidURL, err)
	}
	if u.Host == "" {
		return URL{}, newErr(ErrKindInvalidURL, "missing host")
	}

	var scheme URLScheme
	switch u.Scheme {
	case "http":
		scheme = URLSchemeHTTP
	case "https":
		scheme = URLSchemeHTTPS
	default:
		return URL{}, newErr(ErrKindInvalidURL, "unsupported scheme: "+u.Scheme)
	}

	host := u.Hostname()
	asciiHost, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return URL{}, wrapErr(ErrKindInvalidURL, err)
	}

	port := scheme.defaultPort()
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return URL{}, newErr(ErrKindInvalidURL, "invalid port")
		}
		port = n
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	return URL{Scheme: scheme, Host: asciiHost, Port: port, Path: path}, nil
}

// Addr returns the "host:port" string suitable for net.Dial.
func (u URL) Addr() string {
	return u.Host + ":" + strconv.Itoa(u.Port)
}
