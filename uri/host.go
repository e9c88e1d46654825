package uri

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	"github.com/ghettovoice/urlkit/internal/util"
)

// Host is a normalized URL host.
// Zero value is an absent host.
type Host struct {
	name string
	ip   net.IP
}

// NewHost returns a normalized host: IPv6 brackets are stripped,
// the name is converted to NFC and lower-cased, IP literals are stored in canonical form.
func NewHost(host string) Host {
	host = strings.Trim(util.TrimSP(host), "[]")
	if host == "" {
		return Host{}
	}
	if ip := net.ParseIP(host); ip != nil {
		if v := ip.To4(); v != nil {
			ip = v
		}
		return Host{name: ip.String(), ip: ip}
	}
	return Host{name: util.LCase(norm.NFC.String(host))}
}

// Name returns the host name without IPv6 brackets.
func (h Host) Name() string { return h.name }

// IP returns the parsed IP when the host is an IP literal, otherwise nil.
func (h Host) IP() net.IP { return h.ip }

// IsIP reports whether the host is an IP literal.
func (h Host) IsIP() bool { return h.ip != nil }

// IsEmpty reports whether the host is absent.
func (h Host) IsEmpty() bool { return h.name == "" }

// String returns the host as it appears in the authority, with brackets around IPv6 literals.
func (h Host) String() string {
	if strings.Contains(h.name, ":") {
		return "[" + h.name + "]"
	}
	return h.name
}

// ASCII returns the IDNA (punycode) form of the host.
// IP literals are returned as is.
func (h Host) ASCII() (string, error) {
	if h.ip != nil || h.name == "" {
		return h.String(), nil
	}
	return errtrace.Wrap2(idna.ToASCII(h.name))
}

// IsDomainName reports whether the host is a syntactically valid DNS name.
// Hosts are never validated on construction, this is an informational check.
func (h Host) IsDomainName() bool {
	if h.name == "" || h.ip != nil {
		return false
	}
	name := h.name
	if ascii, err := h.ASCII(); err == nil {
		name = ascii
	}
	_, ok := dns.IsDomainName(name)
	return ok
}

// Format implements fmt.Formatter for custom formatting of the host.
func (h Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && (f.Flag('+') || f.Flag('#')) {
			type hideMethods Host
			type Host hideMethods
			fmt.Fprintf(f, fmt.FormatString(f, verb), Host(h))
			return
		}
		fmt.Fprint(f, h.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), h.String())
	}
}

// Clone returns a deep copy of the host including the underlying IP slice.
func (h Host) Clone() Host {
	h.ip = slices.Clone(h.ip)
	return h
}

// Equal reports whether the host equals the provided value, accepting Host, *Host and string.
func (h Host) Equal(val any) bool {
	var other Host
	switch v := val.(type) {
	case Host:
		other = v
	case *Host:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = NewHost(v)
	default:
		return false
	}

	switch {
	case h.ip != nil && other.ip != nil:
		return h.ip.Equal(other.ip)
	case h.ip == nil && other.ip == nil:
		return h.name == other.name
	default:
		return false
	}
}
