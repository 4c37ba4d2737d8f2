/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package urlparser

import (
	"maps"
	"net/netip"
	"strconv"
	"strings"

	whatwgurl "github.com/nlnwa/whatwg-url/url"
	"github.com/projectdiscovery/utils/errkit"
)

var ErrKindInvalidURL = errkit.NewPrimitiveErrKind(
	"error-fmhurl-invalid-url",
	"input is not a valid URL",
	nil,
)

// Parser is everything the FMH transform needs from a URL grammar.
type Parser interface {
	Parse(raw string) (*ParsedURL, error)
	Serialize(u *ParsedURL) string
	DefaultPort(scheme string) (int, bool)
}

// WHATWG special schemes. file is special but has no port.
var specialSchemePorts = map[string]int{
	"ftp":   21,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

type Option func(*WHATWGParser)

// WithDefaultPorts adds schemes to the special-scheme table (e.g. gopher:70). The table is
// shared by parsing and DefaultPort, so a default port dropped while parsing is the one
// the converter puts back.
func WithDefaultPorts(ports map[string]int) Option {
	return func(p *WHATWGParser) {
		for scheme, port := range ports {
			p.ports[strings.ToLower(scheme)] = port
		}
	}
}

// WHATWGParser implements Parser on top of github.com/nlnwa/whatwg-url.
type WHATWGParser struct {
	parser whatwgurl.Parser
	ports  map[string]int
}

var DefaultParser Parser = NewWHATWGParser()

func NewWHATWGParser(opts ...Option) *WHATWGParser {
	p := &WHATWGParser{ports: maps.Clone(specialSchemePorts)}
	for _, opt := range opts {
		opt(p)
	}

	special := map[string]string{"file": ""}
	for scheme, port := range p.ports {
		special[scheme] = strconv.Itoa(port)
	}
	p.parser = whatwgurl.NewParser(whatwgurl.WithSpecialSchemes(special))
	return p
}

func (p *WHATWGParser) Parse(raw string) (*ParsedURL, error) {
	u, err := p.parser.Parse(raw)
	if err != nil {
		errx := errkit.FromError(err)
		errx.SetKind(ErrKindInvalidURL)
		return nil, errkit.WithMessagef(errx.Build(), "could not parse URL %q", raw)
	}
	return fromWHATWG(u), nil
}

func (p *WHATWGParser) Serialize(u *ParsedURL) string {
	return u.String()
}

func (p *WHATWGParser) DefaultPort(scheme string) (int, bool) {
	port, ok := p.ports[strings.ToLower(scheme)]
	return port, ok
}

func fromWHATWG(u *whatwgurl.Url) *ParsedURL {
	out := &ParsedURL{
		Scheme:   u.Scheme(),
		Host:     classifyHost(u),
		Username: u.Username(),
		Path:     u.Pathname(),
		href:     u.Href(false),
	}

	if port := u.Port(); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			out.Port = &n
		}
	}

	if password := u.Password(); password != "" {
		out.Password = &password
	}

	// Query() and Fragment() fold "absent" and "empty" together, the serialization does not
	withoutFragment := u.Href(true)
	if len(out.href) > len(withoutFragment) {
		fragment := out.href[len(withoutFragment)+1:]
		out.Fragment = &fragment
	}

	// '?' is percent-encoded everywhere before the query, so the first one starts it
	afterScheme := withoutFragment[len(out.Scheme)+1:]
	if i := strings.IndexByte(afterScheme, '?'); i >= 0 {
		query := afterScheme[i+1:]
		out.Query = &query
	}

	return out
}

// classifyHost maps the parsed host to a Host. Opaque hosts of non-special schemes that
// spell a plain IPv4 address are reported as IPv4 too.
func classifyHost(u *whatwgurl.Url) *Host {
	hostname := u.Hostname()
	if hostname == "" {
		return nil
	}

	if u.IsIPv6() {
		if addr, err := netip.ParseAddr(strings.Trim(hostname, "[]")); err == nil {
			return IPHost(addr)
		}
	}

	if addr, err := netip.ParseAddr(hostname); err == nil && addr.Is4() {
		return IPHost(addr)
	}

	return DomainHost(hostname)
}
