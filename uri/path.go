package uri

import (
	"path"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/util"
)

const pathDelim = "/"

// Path is a decoded URL path.
// Every segment is stored decoded, encoding happens only in [Path.Encoded].
type Path struct {
	value string
}

// NewPath splits raw on '/', unescapes every segment and joins them back.
func NewPath(raw string) Path {
	if raw == "" {
		return Path{}
	}
	segs := strings.Split(raw, pathDelim)
	for i := range segs {
		segs[i] = grammar.Unescape(segs[i])
	}
	return Path{value: strings.Join(segs, pathDelim)}
}

// String returns the decoded path.
func (p Path) String() string { return p.value }

// IsEmpty reports whether the path is empty.
func (p Path) IsEmpty() bool { return p.value == "" }

// IsAbsolute reports whether the path starts with '/'.
func (p Path) IsAbsolute() bool { return strings.HasPrefix(p.value, pathDelim) }

// Segments returns non-empty path segments split by '/'.
// Every call returns a fresh slice.
func (p Path) Segments() []string { return p.SegmentsBy(pathDelim) }

// SegmentsBy returns non-empty segments of the trimmed path split by delim.
func (p Path) SegmentsBy(delim string) []string {
	trimmed := p.Trim()
	if trimmed == "" {
		return []string{}
	}
	if delim == "" {
		delim = pathDelim
	}
	parts := strings.Split(trimmed, delim)
	segs := parts[:0]
	for _, s := range parts {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Segment returns the 1-based segment and reports whether it exists.
func (p Path) Segment(index int) (string, bool) { return p.SegmentBy(index, pathDelim) }

// SegmentOr returns the 1-based segment or def if out of range.
func (p Path) SegmentOr(index int, def string) string {
	if s, ok := p.Segment(index); ok {
		return s
	}
	return def
}

// SegmentBy returns the 1-based segment of the path split by delim.
func (p Path) SegmentBy(index int, delim string) (string, bool) {
	segs := p.SegmentsBy(delim)
	if index < 1 || index > len(segs) {
		return "", false
	}
	return segs[index-1], true
}

// Trim returns the path without leading and trailing slashes.
func (p Path) Trim() string { return strings.Trim(p.value, pathDelim) }

// LTrim returns the path without leading slashes.
func (p Path) LTrim() string { return strings.TrimLeft(p.value, pathDelim) }

// RTrim returns the path without trailing slashes.
func (p Path) RTrim() string { return strings.TrimRight(p.value, pathDelim) }

// Absolute resolves "." and ".." segments and returns the canonical absolute path.
// The trailing slash is kept if the resolved path is not the root.
// It returns [ErrPathOutsideRoot] if the path climbs above the root.
func (p Path) Absolute() (string, error) {
	stack := make([]string, 0, strings.Count(p.value, pathDelim)+1)
	for _, seg := range strings.Split(p.value, pathDelim) {
		switch seg = util.TrimSP(seg); {
		case seg == ".." && len(stack) == 0:
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrPathOutsideRoot,
				"cannot resolve absolute path for "+strconv.Quote(p.value)))
		case seg == "..":
			stack = stack[:len(stack)-1]
		case seg == "." || seg == "":
		default:
			stack = append(stack, seg)
		}
	}

	abs := pathDelim + strings.Join(stack, pathDelim)
	if len(stack) > 0 && strings.HasSuffix(p.value, pathDelim) {
		abs += pathDelim
	}
	return abs, nil
}

// Extension returns the extension of the last path element without the dot.
func (p Path) Extension() (string, bool) {
	base := path.Base(p.RTrim())
	if i := strings.LastIndexByte(base, '.'); i >= 0 && i < len(base)-1 {
		return base[i+1:], true
	}
	return "", false
}

// Encoded returns the path with every segment escaped.
func (p Path) Encoded() string {
	if p.value == "" {
		return ""
	}
	segs := strings.Split(p.value, pathDelim)
	for i := range segs {
		segs[i] = grammar.Escape(segs[i], grammar.ShouldEscapeChar)
	}
	return strings.Join(segs, pathDelim)
}

// Append returns the path joined with other using a single '/'.
func (p Path) Append(other string) string {
	switch {
	case other == "":
		return p.value
	case p.value == "":
		return other
	}
	return p.RTrim() + pathDelim + strings.TrimLeft(other, pathDelim)
}

// Prepend returns other joined with the path using a single '/'.
// The result stays absolute if the path is absolute.
func (p Path) Prepend(other string) string {
	switch {
	case other == "":
		return p.value
	case p.value == "":
		return other
	}
	ret := strings.TrimRight(other, pathDelim) + pathDelim + p.LTrim()
	if !strings.HasPrefix(ret, pathDelim) && p.IsAbsolute() {
		ret = pathDelim + ret
	}
	return ret
}

// Equal reports whether the path equals the given Path, *Path or decoded string.
func (p Path) Equal(val any) bool {
	switch v := val.(type) {
	case Path:
		return p.value == v.value
	case *Path:
		return v != nil && p.value == v.value
	case string:
		return p.value == v
	default:
		return false
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (p Path) MarshalText() ([]byte, error) { return []byte(p.Encoded()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Path) UnmarshalText(text []byte) error {
	*p = NewPath(string(text))
	return nil
}
