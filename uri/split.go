package uri

//go:generate go tool mockgen -destination=../internal/testutil/urimock/splitter.go -package=urimock . Splitter

import (
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/grammar"
)

// Components are raw URL components as returned by a [Splitter].
// Userinfo, path, query and fragment are still escaped.
type Components struct {
	Scheme   string
	Host     string
	User     string
	Pass     string
	Port     int
	Path     string
	Query    string
	Fragment string

	HasUser bool
	HasPass bool
	HasPort bool
}

// Splitter splits a raw URL string into components.
type Splitter interface {
	Split(raw string) (Components, error)
}

// SplitterFunc is an adapter to allow the use of ordinary functions as [Splitter].
type SplitterFunc func(raw string) (Components, error)

func (fn SplitterFunc) Split(raw string) (Components, error) { return errtrace.Wrap2(fn(raw)) }

// DefaultSplitter splits URLs with [net/url.Parse].
var DefaultSplitter Splitter = SplitterFunc(splitStd)

func splitStd(raw string) (Components, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Components{}, errtrace.Wrap(newMalformedInputErr(err))
	}

	c := Components{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Path:     u.EscapedPath(),
		Query:    u.RawQuery,
		Fragment: u.EscapedFragment(),
	}
	if u.Opaque != "" {
		// "scheme:opaque" has no authority, opaque part is the path
		c.Path = u.Opaque
	}
	if u.User != nil {
		c.User, c.HasUser = grammar.Escape(u.User.Username(), grammar.ShouldEscapeChar), true
		if pass, ok := u.User.Password(); ok {
			c.Pass, c.HasPass = grammar.Escape(pass, grammar.ShouldEscapeChar), true
		}
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port > maxPort {
			return Components{}, errtrace.Wrap(newMalformedInputErr("invalid port %q", p))
		}
		c.Port, c.HasPort = port, true
	}
	return c, nil
}
