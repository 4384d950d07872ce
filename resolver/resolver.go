// Package resolver implements the DNS resolution collaborator the client
// depends on to turn a host name into a dialable address (spec §1: DNS
// resolution is an external collaborator, not something the core
// implements itself). The default implementation issues a single A-record
// query over a caller-supplied nameserver using miekg/dns rather than
// going through the host OS resolver, which matters on constrained devices
// that don't always have a working /etc/resolv.conf (grounded on
// curol-go-net's go.mod, the only repo in the retrieval pack with a real
// DNS library dependency).
package resolver

import (
	"net"
	"time"

	"github.com/miekg/dns"
)

// Resolver resolves a host name to an IPv4 address.
type Resolver interface {
	Resolve(host string) (net.IP, error)
}

// Static is a Resolver that always returns a fixed address, useful for
// tests and for callers who already have an IP and just want to skip
// resolution.
type Static struct {
	IP net.IP
}

func (s Static) Resolve(string) (net.IP, error) { return s.IP, nil }

// DNSResolver queries a single nameserver directly via miekg/dns, with no
// caching and no retry beyond what the caller wraps around it.
type DNSResolver struct {
	Nameserver string // "host:port", e.g. "1.1.1.1:53"
	Timeout    time.Duration
}

// NewDNSResolver returns a DNSResolver targeting ns ("host:port").
func NewDNSResolver(ns string) *DNSResolver {
	return &DNSResolver{Nameserver: ns, Timeout: 5 * time.Second}
}

// Resolve issues a single A-record query for host.
func (r *DNSResolver) Resolve(host string) (net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return ip, nil
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), dns.TypeA)
	m.RecursionDesired = true

	c := new(dns.Client)
	if r.Timeout > 0 {
		c.Timeout = r.Timeout
	}

	resp, _, err := c.Exchange(m, r.Nameserver)
	if err != nil {
		return nil, err
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, &dnsError{host: host, rcode: resp.Rcode}
	}

	for _, ans := range resp.Answer {
		if a, ok := ans.(*dns.A); ok {
			return a.A, nil
		}
	}
	return nil, &dnsError{host: host, rcode: -1}
}

type dnsError struct {
	host  string
	rcode int
}

func (e *dnsError) Error() string {
	if e.rcode == -1 {
		return "resolver: no A record for " + e.host
	}
	return "resolver: " + dns.RcodeToString[e.rcode] + " resolving " + e.host
}
