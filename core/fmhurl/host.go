/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package fmhurl

import (
	"net/netip"
	"strings"

	"github.com/slicingmelon/gofmhurl/core/urlparser"
)

// ReverseLabels reverses the dot-separated labels of s. It is its own inverse.
func ReverseLabels(s string) string {
	labels := strings.Split(s, ".")
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return strings.Join(labels, ".")
}

// EncodeHost renders a parsed host in FMH form: domains most-general label first,
// IPv4 unchanged, IPv6 fully expanded inside brackets.
func EncodeHost(h *urlparser.Host) string {
	if h == nil {
		return ""
	}

	switch h.Kind {
	case urlparser.HostIPv4:
		return h.IP.String()
	case urlparser.HostIPv6:
		return "[" + ExpandIPv6(h.IP) + "]"
	default:
		return ReverseLabels(h.Domain)
	}
}

// DecodeHost turns an FMH host segment back into a URL host. Bracketed literals and
// dotted-quad IPv4 addresses pass through, anything else is treated as reversed labels.
func DecodeHost(s string) string {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return s
	}

	if addr, err := netip.ParseAddr(s); err == nil && addr.Is4() {
		return s
	}

	return ReverseLabels(s)
}
