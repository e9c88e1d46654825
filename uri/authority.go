package uri

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/util"
)

const maxPort = 0xffff

// Authority is the "[userinfo@]host[:port]" part of a URL.
// Username and password are stored decoded.
type Authority struct {
	host      Host
	usrname   string
	passwd    string
	port      int
	hasUser   bool
	hasPasswd bool
	hasPort   bool
}

// NewAuthority returns an authority with the given host and no userinfo or port.
func NewAuthority(host string) Authority {
	return Authority{host: NewHost(host)}
}

// Host returns the host.
func (a Authority) Host() Host { return a.host }

// Username returns the decoded username, in case it is set, and a bool flag indicating whether it is set.
func (a Authority) Username() (string, bool) { return a.usrname, a.hasUser }

// Password returns the decoded password, in case it is set, and a bool flag indicating whether it is set.
func (a Authority) Password() (string, bool) { return a.passwd, a.hasPasswd }

// Port returns the port, in case it is set, and a bool flag indicating whether it is set.
func (a Authority) Port() (int, bool) { return a.port, a.hasPort }

// UserInfo returns the escaped "username[:password]" and reports whether the username is set.
func (a Authority) UserInfo() (string, bool) {
	if !a.hasUser {
		return "", false
	}
	ui := grammar.Escape(a.usrname, grammar.ShouldEscapeChar)
	if a.hasPasswd {
		ui += ":" + grammar.Escape(a.passwd, grammar.ShouldEscapeChar)
	}
	return ui, true
}

// String returns "[userinfo@]host[:port]".
func (a Authority) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	// an empty username renders no userinfo at all
	if ui, ok := a.UserInfo(); ok && ui != "" {
		sb.WriteString(ui)
		sb.WriteByte('@')
	}
	sb.WriteString(a.host.String())
	if a.hasPort {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(a.port))
	}
	return sb.String()
}

// IsZero reports whether the authority renders to an empty string.
func (a Authority) IsZero() bool { return a.String() == "" }

// WithHost returns a copy of the authority with the given host, empty host removes it.
func (a Authority) WithHost(host string) Authority {
	a.host = NewHost(host)
	return a
}

// WithoutHost returns a copy of the authority without the host.
func (a Authority) WithoutHost() Authority {
	a.host = Host{}
	return a
}

// WithUsername returns a copy of the authority with the given decoded username.
func (a Authority) WithUsername(usrname string) Authority {
	a.usrname, a.hasUser = usrname, true
	return a
}

// WithoutUsername returns a copy of the authority without the username and the password.
func (a Authority) WithoutUsername() Authority {
	a.usrname, a.hasUser = "", false
	a.passwd, a.hasPasswd = "", false
	return a
}

// WithPassword returns a copy of the authority with the given decoded password.
// It returns [ErrPasswordWithoutUsername] if the username is not set.
func (a Authority) WithPassword(passwd string) (Authority, error) {
	if !a.hasUser {
		return a, errtrace.Wrap(errorutil.NewInvalidArgumentError(ErrPasswordWithoutUsername))
	}
	a.passwd, a.hasPasswd = passwd, true
	return a, nil
}

// WithoutPassword returns a copy of the authority without the password.
func (a Authority) WithoutPassword() Authority {
	a.passwd, a.hasPasswd = "", false
	return a
}

// WithPort returns a copy of the authority with the given port.
// It returns [ErrInvalidPort] if the port is outside of [0, 65535].
func (a Authority) WithPort(port int) (Authority, error) {
	if port < 0 || port > maxPort {
		return a, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			errorutil.NewWrapperError(ErrInvalidPort, "%d must be between 0 and %d", port, maxPort),
		))
	}
	a.port, a.hasPort = port, true
	return a, nil
}

// WithoutPort returns a copy of the authority without the port.
func (a Authority) WithoutPort() Authority {
	a.port, a.hasPort = 0, false
	return a
}

// Clone returns a deep copy of the authority.
func (a Authority) Clone() Authority {
	a.host = a.host.Clone()
	return a
}

// Equal reports whether the authority equals the given Authority or *Authority.
func (a Authority) Equal(val any) bool {
	var other Authority
	switch v := val.(type) {
	case Authority:
		other = v
	case *Authority:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return a.host.Equal(other.host) &&
		a.usrname == other.usrname && a.hasUser == other.hasUser &&
		a.passwd == other.passwd && a.hasPasswd == other.hasPasswd &&
		a.port == other.port && a.hasPort == other.hasPort
}
