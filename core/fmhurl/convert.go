/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package fmhurl

import (
	"strconv"
	"strings"

	"github.com/slicingmelon/gofmhurl/core/urlparser"
	GFMLogger "github.com/slicingmelon/gofmhurl/core/utils/logger"
)

// Converter converts between URLs and FMH-URLs. It only holds its parser and is safe for
// concurrent use.
type Converter struct {
	parser urlparser.Parser
}

func New(parser urlparser.Parser) *Converter {
	if parser == nil {
		parser = urlparser.DefaultParser
	}
	return &Converter{parser: parser}
}

var defaultConverter = New(urlparser.DefaultParser)

// Convert renders u as an FMH-URL using the default parser's port table.
func Convert(u *urlparser.ParsedURL) string {
	return defaultConverter.Convert(u)
}

// ConvertString parses raw with the default parser and converts it.
func ConvertString(raw string) (string, error) {
	return defaultConverter.ConvertString(raw)
}

func (c *Converter) Parser() urlparser.Parser {
	return c.parser
}

func (c *Converter) ConvertString(raw string) (string, error) {
	u, err := c.parser.Parse(raw)
	if err != nil {
		return "", err
	}
	return c.Convert(u), nil
}

// Convert lays u out as host/scheme/port/userinfo/rest. Nothing is re-encoded: every
// component is copied as the parser produced it.
func (c *Converter) Convert(u *urlparser.ParsedURL) string {
	var sb strings.Builder

	if u.Host != nil {
		sb.WriteString(EncodeHost(u.Host))
		trace("host added", &sb)
	}
	sb.WriteByte('/')

	sb.WriteString(u.Scheme)
	sb.WriteByte('/')
	trace("scheme added", &sb)

	if port, ok := c.resolvePort(u); ok {
		sb.WriteString(strconv.Itoa(port))
		trace("port added", &sb)
	}
	sb.WriteByte('/')

	// "@" with no credentials collapses to nothing
	if u.Username != "" || u.Password != nil {
		sb.WriteString(u.Username)
		if u.Password != nil {
			sb.WriteByte(':')
			sb.WriteString(*u.Password)
		}
		trace("userinfo added", &sb)
	}
	sb.WriteByte('/')

	sb.WriteString(u.Path)
	trace("path added", &sb)

	if u.Query != nil {
		sb.WriteByte('?')
		sb.WriteString(*u.Query)
		trace("query added", &sb)
	}

	if u.Fragment != nil {
		sb.WriteByte('#')
		sb.WriteString(*u.Fragment)
		trace("fragment added", &sb)
	}

	return sb.String()
}

func (c *Converter) resolvePort(u *urlparser.ParsedURL) (int, bool) {
	if u.Port != nil {
		return *u.Port, true
	}
	return c.parser.DefaultPort(u.Scheme)
}

func trace(checkpoint string, sb *strings.Builder) {
	GFMLogger.Debug().Component("convert").Metadata("fmh", sb.String()).Msgf("%s", checkpoint)
}
