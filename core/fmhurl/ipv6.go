/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package fmhurl

import (
	"net/netip"
)

const hexDigits = "0123456789abcdef"

// ExpandIPv6 writes addr as eight colon-separated groups of four lowercase hex digits,
// with no "::" compression and no zero suppression. IPv4 addresses are expanded in their
// IPv4-mapped form.
func ExpandIPv6(addr netip.Addr) string {
	b := addr.As16()

	out := make([]byte, 0, 39)
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			out = append(out, ':')
		}
		out = append(out,
			hexDigits[b[i]>>4], hexDigits[b[i]&0x0f],
			hexDigits[b[i+1]>>4], hexDigits[b[i+1]&0x0f],
		)
	}
	return string(out)
}
