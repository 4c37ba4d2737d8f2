/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package fmhurl

import (
	"strings"

	"github.com/slicingmelon/gofmhurl/core/urlparser"
	GFMLogger "github.com/slicingmelon/gofmhurl/core/utils/logger"
)

const segmentCount = 5

// Segments are the five positional fields of an FMH-URL. Rest keeps the path, query and
// fragment verbatim, including any further slashes.
type Segments struct {
	Host     string
	Scheme   string
	Port     string
	Userinfo string
	Rest     string
}

// Split cuts fmhURL at its first four slashes.
func Split(fmhURL string) (Segments, error) {
	parts := strings.SplitN(fmhURL, "/", segmentCount)
	if len(parts) != segmentCount {
		return Segments{}, newInvalidFmhURLError(fmhURL)
	}

	return Segments{
		Host:     parts[0],
		Scheme:   parts[1],
		Port:     parts[2],
		Userinfo: parts[3],
		Rest:     parts[4],
	}, nil
}

// hasAuthority reports whether the rebuilt URL needs "//". Opaque URLs (mailto:, data:)
// have none of the three.
func (s Segments) hasAuthority() bool {
	return s.Host != "" || s.Port != "" || s.Userinfo != ""
}

// URLString rebuilds the standard URL string without parsing it.
func (s Segments) URLString() string {
	var sb strings.Builder

	sb.WriteString(s.Scheme)
	sb.WriteByte(':')

	if s.hasAuthority() {
		sb.WriteString("//")
	} else if strings.HasPrefix(s.Rest, "//") {
		// a hostless path starting with "//" would read back as an authority
		sb.WriteString("/.")
	}

	if s.Userinfo != "" {
		sb.WriteString(s.Userinfo)
		sb.WriteByte('@')
	}

	sb.WriteString(DecodeHost(s.Host))

	if s.Port != "" {
		sb.WriteByte(':')
		sb.WriteString(s.Port)
	}

	sb.WriteString(s.Rest)
	return sb.String()
}

// Revert parses fmhURL back into a URL with the default parser.
func Revert(fmhURL string) (*urlparser.ParsedURL, error) {
	return defaultConverter.Revert(fmhURL)
}

// Revert fails with ErrKindInvalidFmhURL when fmhURL has fewer than five segments, and with
// ErrKindReconstruction when the rebuilt string does not parse.
func (c *Converter) Revert(fmhURL string) (*urlparser.ParsedURL, error) {
	segments, err := Split(fmhURL)
	if err != nil {
		return nil, err
	}

	reconstructed := segments.URLString()
	GFMLogger.Debug().Component("revert").Metadata("url", reconstructed).Msgf("reverted URL")

	u, err := c.parser.Parse(reconstructed)
	if err != nil {
		return nil, newReconstructionError(reconstructed, err)
	}
	return u, nil
}

// RevertString reverts fmhURL and returns the parser's serialization.
func (c *Converter) RevertString(fmhURL string) (string, error) {
	u, err := c.Revert(fmhURL)
	if err != nil {
		return "", err
	}
	return c.parser.Serialize(u), nil
}

func RevertString(fmhURL string) (string, error) {
	return defaultConverter.RevertString(fmhURL)
}
