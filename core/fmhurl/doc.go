// Package fmhurl converts URLs to and from FMH-URLs.
//
// An FMH-URL lays a URL out as five slash-separated fields, host first with its labels
// reversed, so that URLs sort and group like filesystem paths:
//
//	https://sub.example.com/users/profile?b=123#top
//	com.example.sub/https/443///users/profile?b=123#top
//
// The fields are host, scheme, port, userinfo and rest. The port is always explicit (the
// scheme default is filled in), userinfo is "user", ":password", "user:password" or empty,
// and rest is the path with query and fragment, copied verbatim. IPv4 hosts are kept as is
// and IPv6 hosts are written fully expanded in brackets.
//
// URL grammar (IDNA, percent-encoding, default ports) is delegated to a urlparser.Parser.
package fmhurl
