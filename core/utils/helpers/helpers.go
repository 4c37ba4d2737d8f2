/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package helpers

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeForTerminal escapes control characters and invalid UTF-8 so an input line can be
// echoed in a single log line. Printable unicode is kept as is.
func SanitizeForTerminal(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))

	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&sb, "\\x%02x", input[i])
		case r == '\t':
			sb.WriteString("\\t")
		case r == '\n':
			sb.WriteString("\\n")
		case r == '\r':
			sb.WriteString("\\r")
		case unicode.IsControl(r):
			if r < 0x100 {
				fmt.Fprintf(&sb, "\\x%02x", r)
			} else {
				fmt.Fprintf(&sb, "\\u%04x", r)
			}
		default:
			sb.WriteRune(r)
		}
		i += size
	}
	return sb.String()
}
