/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package urlparser

import (
	"net/netip"
	"strconv"
)

type HostKind int

const (
	HostDomain HostKind = iota
	HostIPv4
	HostIPv6
)

func (k HostKind) String() string {
	switch k {
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	default:
		return "domain"
	}
}

// Host is a parsed URL host. Domain is set for HostDomain, IP for the two literal kinds.
type Host struct {
	Kind   HostKind
	Domain string
	IP     netip.Addr
}

func DomainHost(domain string) *Host {
	return &Host{Kind: HostDomain, Domain: domain}
}

// IPHost classifies addr as IPv4 or IPv6. IPv4-mapped IPv6 addresses stay IPv6.
func IPHost(addr netip.Addr) *Host {
	if addr.Is4() {
		return &Host{Kind: HostIPv4, IP: addr}
	}
	return &Host{Kind: HostIPv6, IP: addr}
}

// String renders the host the way it appears inside a URL.
func (h *Host) String() string {
	switch h.Kind {
	case HostIPv4:
		return h.IP.String()
	case HostIPv6:
		return "[" + h.IP.WithZone("").String() + "]"
	default:
		return h.Domain
	}
}

// ParsedURL is the parser's view of a URL. Optional components are nil when absent;
// a pointer to "" means the delimiter was present with nothing after it.
type ParsedURL struct {
	Scheme   string
	Host     *Host
	Port     *int
	Username string
	Password *string
	Path     string
	Query    *string
	Fragment *string

	href string
}

// String returns the serialization recorded by the parser, or one built from the fields
// when the value was assembled by hand.
func (u *ParsedURL) String() string {
	if u.href != "" {
		return u.href
	}

	out := u.Scheme + ":"
	if u.Host != nil {
		out += "//"
		if u.Username != "" || u.Password != nil {
			out += u.Username
			if u.Password != nil {
				out += ":" + *u.Password
			}
			out += "@"
		}
		out += u.Host.String()
		if u.Port != nil {
			out += ":" + strconv.Itoa(*u.Port)
		}
	}
	out += u.Path
	if u.Query != nil {
		out += "?" + *u.Query
	}
	if u.Fragment != nil {
		out += "#" + *u.Fragment
	}
	return out
}

// Equal compares two URLs by their canonical serialization.
func (u *ParsedURL) Equal(other *ParsedURL) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.String() == other.String()
}
