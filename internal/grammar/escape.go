package grammar

import (
	"bytes"

	"github.com/ghettovoice/urlkit/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed sequences are copied as is.
func Unescape[T constraints.Byteseq](s T) T {
	return unescape(s, false)
}

// UnescapeQuery is like [Unescape] but also decodes '+' into a space,
// as query strings are parsed by HTML forms and most servers.
func UnescapeQuery[T constraints.Byteseq](s T) T {
	return unescape(s, true)
}

func unescape[T constraints.Byteseq](s T, plusAsSpace bool) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case s[i] == '+' && plusAsSpace:
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// If shouldEscape is nil, everything except unreserved chars is escaped.
// The '%' char is always escaped, so Unescape(Escape(s)) == s for any s.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var n int
	for i := 0; i < len(s); i++ {
		if s[i] == '%' || shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' || shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphanumChar checks ALPHA / DIGIT rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsCharUnreserved checks on RFC 3986 unreserved rule.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}

// ShouldEscapeChar reports whether c must be escaped inside any URL component:
// path segment, query key or value, username, password and fragment share one set.
// Everything except unreserved chars is escaped, so '/' in a segment becomes "%2F"
// and space is rendered as "%20", never as '+'.
func ShouldEscapeChar(c byte) bool { return !IsCharUnreserved(c) }
