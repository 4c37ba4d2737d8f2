package fmhurl

import (
	"net/netip"
	"regexp"
	"testing"

	"github.com/slicingmelon/gofmhurl/core/urlparser"
	"github.com/stretchr/testify/assert"
)

var canonicalIPv6 = regexp.MustCompile(`^[0-9a-f]{4}(:[0-9a-f]{4}){7}$`)

func TestExpandIPv6(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"::1", "0000:0000:0000:0000:0000:0000:0000:0001"},
		{"::", "0000:0000:0000:0000:0000:0000:0000:0000"},
		{"2001:db8::ff00:42:8329", "2001:0db8:0000:0000:0000:ff00:0042:8329"},
		{"FE80::ABCD", "fe80:0000:0000:0000:0000:0000:0000:abcd"},
		{"::ffff:192.168.0.1", "0000:0000:0000:0000:0000:ffff:c0a8:0001"},
		{"1:2:3:4:5:6:7:8", "0001:0002:0003:0004:0005:0006:0007:0008"},
		{"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ExpandIPv6(netip.MustParseAddr(tt.in))
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, canonicalIPv6, got)
		})
	}
}

func TestReverseLabels(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.b.com", "com.b.a"},
		{"example.com", "com.example"},
		{"localhost", "localhost"},
		{"", ""},
		{"a..b", "b..a"},
		{"trailing.dot.", ".dot.trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseLabels(tt.in))
			assert.Equal(t, tt.in, ReverseLabels(ReverseLabels(tt.in)))
		})
	}
}

func TestEncodeHost(t *testing.T) {
	tests := []struct {
		name string
		host *urlparser.Host
		want string
	}{
		{"nil", nil, ""},
		{"domain", urlparser.DomainHost("sub.example.com"), "com.example.sub"},
		{"single label", urlparser.DomainHost("intranet"), "intranet"},
		{"ipv4", urlparser.IPHost(netip.MustParseAddr("192.168.1.20")), "192.168.1.20"},
		{"ipv6", urlparser.IPHost(netip.MustParseAddr("::1")), "[0000:0000:0000:0000:0000:0000:0000:0001]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeHost(tt.host))
		})
	}
}

func TestDecodeHost(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"reversed domain", "com.example.sub", "sub.example.com"},
		{"ipv4 unchanged", "127.0.0.1", "127.0.0.1"},
		{"bracketed unchanged", "[0000:0000:0000:0000:0000:0000:0000:0001]", "[0000:0000:0000:0000:0000:0000:0000:0001]"},
		{"not quite ipv4 is a domain", "1.2.3", "3.2.1"},
		{"leading zero octet is a domain", "01.2.3.4", "4.3.2.01"},
		{"punycode", "xn--l8j", "xn--l8j"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeHost(tt.in))
		})
	}
}

func TestHostCodecSymmetry(t *testing.T) {
	hosts := []*urlparser.Host{
		urlparser.DomainHost("a.b.c.example.co.uk"),
		urlparser.DomainHost("my-local-server.local-network"),
		urlparser.IPHost(netip.MustParseAddr("10.20.30.40")),
	}

	for _, h := range hosts {
		assert.Equal(t, h.String(), DecodeHost(EncodeHost(h)))
	}
}
