package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/util"
)

const mailtoScheme = "mailto"

// Mailto is a "mailto:" URL.
type Mailto struct {
	url URL
}

// ParseMailto parses a "mailto:" URL.
// It returns [ErrMalformedInput] if raw does not start with "mailto:".
func ParseMailto(raw string) (Mailto, error) {
	if raw == "" {
		return Mailto{}, errtrace.Wrap(ErrEmptyInput)
	}
	if !util.HasPrefixFold(raw, mailtoScheme+":") {
		return Mailto{}, errtrace.Wrap(newMalformedInputErr("not a mailto URL: %q", raw))
	}
	u, err := Parse(raw)
	if err != nil {
		return Mailto{}, errtrace.Wrap(err)
	}
	return Mailto{url: u}, nil
}

// MustParseMailto is like [ParseMailto] but panics on error.
func MustParseMailto(raw string) Mailto { return util.Must2(ParseMailto(raw)) }

// URL returns the underlying URL.
func (m Mailto) URL() URL { return m.url }

// To returns recipients from the path and the "to" query param.
func (m Mailto) To() []string {
	return append(splitAddrs(m.url.Path().String()), m.addrsParam("to")...)
}

// CC returns recipients from the "cc" query param.
func (m Mailto) CC() []string { return m.addrsParam("cc") }

// BCC returns recipients from the "bcc" query param.
func (m Mailto) BCC() []string { return m.addrsParam("bcc") }

// Subject returns the "subject" query param.
func (m Mailto) Subject() string { return m.param("subject") }

// Body returns the "body" query param.
func (m Mailto) Body() string { return m.param("body") }

// String returns the string representation of the mailto URL.
func (m Mailto) String() string { return m.url.String() }

func (m Mailto) param(name string) string {
	for _, k := range m.url.Query().All().Keys() {
		if util.EqFold(k, name) {
			v, _ := m.url.Query().Get(k)
			return v.String()
		}
	}
	return ""
}

func (m Mailto) addrsParam(name string) []string { return splitAddrs(m.param(name)) }

func splitAddrs(s string) []string {
	var addrs []string
	for addr := range strings.SplitSeq(s, ",") {
		if addr = util.TrimSP(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}
