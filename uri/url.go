package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/ioutil"
	"github.com/ghettovoice/urlkit/internal/util"
)

// URL is an immutable URL value.
//
// All With* and Without* methods return a modified copy, the receiver is never changed.
// Zero value is an empty relative URL.
type URL struct {
	scheme    Scheme
	authority Authority
	path      Path
	query     Query
	fragment  string
}

// ParseOption configures [Parse].
type ParseOption interface {
	applyParse(opts *parseOptions)
}

type parseOptions struct {
	splitter Splitter
}

type withSplitter struct {
	s Splitter
}

func (o withSplitter) applyParse(opts *parseOptions) {
	if o.s != nil {
		opts.splitter = o.s
	}
}

// WithSplitter sets the splitter used to split the raw URL, [DefaultSplitter] is used by default.
func WithSplitter(s Splitter) ParseOption { return withSplitter{s} }

// Parse splits raw into components and builds a [URL] from them.
// It returns [ErrMalformedInput] if raw cannot be split.
func Parse(raw string, opts ...ParseOption) (URL, error) {
	o := parseOptions{splitter: DefaultSplitter}
	for _, opt := range opts {
		opt.applyParse(&o)
	}

	c, err := o.splitter.Split(raw)
	if err != nil {
		return URL{}, errtrace.Wrap(newMalformedInputErr(err))
	}
	return errtrace.Wrap2(FromComponents(c))
}

// MustParse is like [Parse] but panics on error.
func MustParse(raw string, opts ...ParseOption) URL {
	return util.Must2(Parse(raw, opts...))
}

// FromComponents builds a [URL] from raw escaped components.
func FromComponents(c Components) (URL, error) {
	auth := NewAuthority(c.Host)
	if c.HasUser {
		auth = auth.WithUsername(grammar.Unescape(c.User))
	}
	if c.HasPass {
		var err error
		if auth, err = auth.WithPassword(grammar.Unescape(c.Pass)); err != nil {
			return URL{}, errtrace.Wrap(err)
		}
	}
	if c.HasPort {
		var err error
		if auth, err = auth.WithPort(c.Port); err != nil {
			return URL{}, errtrace.Wrap(err)
		}
	}

	return URL{
		scheme:    NewScheme(c.Scheme),
		authority: auth,
		path:      NewPath(c.Path),
		query:     NewQuery(c.Query),
		fragment:  grammar.Unescape(c.Fragment),
	}, nil
}

// Scheme returns the scheme.
func (u URL) Scheme() Scheme { return u.scheme }

// Authority returns the authority.
func (u URL) Authority() Authority { return u.authority }

// Host returns the host.
func (u URL) Host() Host { return u.authority.Host() }

// Port returns the port, in case it is set, and a bool flag indicating whether it is set.
func (u URL) Port() (int, bool) { return u.authority.Port() }

// User returns the decoded username, in case it is set, and a bool flag indicating whether it is set.
func (u URL) User() (string, bool) { return u.authority.Username() }

// Pass returns the decoded password, in case it is set, and a bool flag indicating whether it is set.
func (u URL) Pass() (string, bool) { return u.authority.Password() }

// Path returns the path.
func (u URL) Path() Path { return u.path }

// Query returns the query.
func (u URL) Query() Query { return u.query }

// Fragment returns the decoded fragment.
func (u URL) Fragment() string { return u.fragment }

// IsAbsolute reports whether the URL has a scheme.
func (u URL) IsAbsolute() bool { return !u.scheme.IsEmpty() }

// WithScheme returns a copy of the URL with the given scheme, empty scheme removes it.
func (u URL) WithScheme(scheme string) URL {
	u.scheme = NewScheme(scheme)
	return u
}

// WithoutScheme returns a copy of the URL without the scheme.
func (u URL) WithoutScheme() URL { return u.WithScheme("") }

// WithHost returns a copy of the URL with the given host, empty host removes it.
func (u URL) WithHost(host string) URL {
	u.authority = u.authority.WithHost(host)
	return u
}

// WithoutHost returns a copy of the URL without the host.
func (u URL) WithoutHost() URL {
	u.authority = u.authority.WithoutHost()
	return u
}

// WithPort returns a copy of the URL with the given port.
// It returns [ErrInvalidPort] if the port is outside of [0, 65535].
func (u URL) WithPort(port int) (URL, error) {
	auth, err := u.authority.WithPort(port)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	u.authority = auth
	return u, nil
}

// WithoutPort returns a copy of the URL without the port.
func (u URL) WithoutPort() URL {
	u.authority = u.authority.WithoutPort()
	return u
}

// WithUser returns a copy of the URL with the given decoded username.
func (u URL) WithUser(user string) URL {
	u.authority = u.authority.WithUsername(user)
	return u
}

// WithoutUser returns a copy of the URL without the username and the password.
func (u URL) WithoutUser() URL {
	u.authority = u.authority.WithoutUsername()
	return u
}

// WithPass returns a copy of the URL with the given decoded password.
// It returns [ErrPasswordWithoutUsername] if the URL has no username.
func (u URL) WithPass(pass string) (URL, error) {
	auth, err := u.authority.WithPassword(pass)
	if err != nil {
		return u, errtrace.Wrap(err)
	}
	u.authority = auth
	return u, nil
}

// WithoutPass returns a copy of the URL without the password.
func (u URL) WithoutPass() URL {
	u.authority = u.authority.WithoutPassword()
	return u
}

// WithPath returns a copy of the URL with the given path, the path is unescaped segment by segment.
func (u URL) WithPath(path string) URL {
	u.path = NewPath(path)
	return u
}

// WithoutPath returns a copy of the URL without the path.
func (u URL) WithoutPath() URL { return u.WithPath("") }

// WithQuery returns a copy of the URL with the given structured query.
func (u URL) WithQuery(params *Params) URL {
	u.query = QueryFrom(params)
	return u
}

// WithRawQuery returns a copy of the URL with the given raw query string.
func (u URL) WithRawQuery(raw string) URL {
	u.query = NewQuery(raw)
	return u
}

// WithoutQuery returns a copy of the URL without the query.
func (u URL) WithoutQuery() URL {
	u.query = Query{}
	return u
}

// WithQueryParam returns a copy of the URL with the query param set to [ValueOf](value).
func (u URL) WithQueryParam(param string, value any) URL {
	u.query = u.query.WithQueryParam(param, value)
	return u
}

// WithOnlyQueryParams returns a copy of the URL whose query holds only the given params.
func (u URL) WithOnlyQueryParams(params ...string) URL {
	u.query = u.query.WithOnlyQueryParams(params...)
	return u
}

// WithoutQueryParams returns a copy of the URL whose query does not hold the given params.
func (u URL) WithoutQueryParams(params ...string) URL {
	u.query = u.query.WithoutQueryParams(params...)
	return u
}

// WithFragment returns a copy of the URL with the given decoded fragment, leading '#' chars are trimmed.
func (u URL) WithFragment(fragment string) URL {
	u.fragment = strings.TrimLeft(fragment, "#")
	return u
}

// WithoutFragment returns a copy of the URL without the fragment.
func (u URL) WithoutFragment() URL { return u.WithFragment("") }

// Clone returns a deep copy of the URL.
func (u URL) Clone() URL {
	u.authority = u.authority.Clone()
	return u
}

// RenderTo writes the URL to w as "scheme://authority/path?query#fragment",
// omitting absent parts.
func (u URL) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if !u.scheme.IsEmpty() {
		cw.WriteStrings(u.scheme.String(), ":")
	}
	if auth := u.authority.String(); auth != "" {
		cw.WriteStrings("//", auth)
	}
	cw.WriteString(u.path.Encoded())
	if q := u.query.String(); q != "" {
		cw.WriteStrings("?", q)
	}
	if u.fragment != "" {
		cw.WriteStrings("#", grammar.Escape(u.fragment, grammar.ShouldEscapeChar))
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the URL.
func (u URL) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URL(u))
		return
	}
}

// LogValue implements [slog.LogValuer], the password is redacted.
func (u URL) LogValue() slog.Value {
	redacted := u
	if _, ok := u.Pass(); ok {
		redacted.authority, _ = u.authority.WithPassword("xxxxx")
	}
	return slog.StringValue(redacted.String())
}

// Equal reports whether the URL equals the given URL, *URL or raw string.
// URLs are equal when they render to the same string.
func (u URL) Equal(val any) bool {
	var other URL
	switch v := val.(type) {
	case URL:
		other = v
	case *URL:
		if v == nil {
			return false
		}
		other = *v
	case string:
		var err error
		if other, err = Parse(v); err != nil {
			return false
		}
	default:
		return false
	}
	return u.String() == other.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
