package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders is the lookup order used when no headers are configured.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Config selects which proxy headers are trusted to carry the client address.
type Config struct {
	// TrustedHeaders is checked in order. Leave empty behind no proxy so
	// clients cannot spoof their address.
	TrustedHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`
}

// Resolver extracts the client address from a request.
type Resolver struct {
	headers []string
}

// NewResolver returns a Resolver that trusts the given headers in order.
func NewResolver(headers ...string) *Resolver {
	clean := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			clean = append(clean, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: clean}
}

// GetIP returns the first valid address from the trusted headers, then
// falls back to RemoteAddr. X-Forwarded-For yields its left-most valid entry.
// Returns an empty string when nothing parses.
func (r *Resolver) GetIP(req *http.Request) string {
	for _, h := range r.headers {
		v := req.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return parseIP(req.RemoteAddr)
	}
	return parseIP(host)
}

// GetIP resolves the client address using DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.GetIP(r)
}

var defaultResolver = NewResolver(DefaultHeaders...)

// parseIP validates and normalizes an address, dropping any IPv6 zone.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.WithZone("").Unmap().String()
}
