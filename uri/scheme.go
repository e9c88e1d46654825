package uri

import (
	"slices"

	"github.com/ghettovoice/urlkit/internal/util"
)

// Scheme is a lower-cased URL scheme. Empty scheme means a relative URL.
type Scheme string

// NewScheme returns a normalized scheme.
func NewScheme(s string) Scheme { return Scheme(util.LCase(util.TrimSP(s))) }

func (s Scheme) String() string { return string(s) }

// IsEmpty reports whether the scheme is absent.
func (s Scheme) IsEmpty() bool { return s == "" }

// Equal reports whether the scheme equals the given one, ignoring case.
// It accepts Scheme, *Scheme and string values.
func (s Scheme) Equal(val any) bool {
	switch v := val.(type) {
	case Scheme:
		return util.EqFold(s, v)
	case *Scheme:
		return v != nil && util.EqFold(s, *v)
	case string:
		return util.EqFold(s, v)
	default:
		return false
	}
}

// In reports whether the scheme is one of the given schemes.
func (s Scheme) In(schemes ...string) bool {
	return slices.ContainsFunc(schemes, func(v string) bool { return util.EqFold(s, v) })
}
