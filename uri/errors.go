package uri

import (
	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/grammar"
)

type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when a derivation receives an out of range or inconsistent value.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrEmptyInput is returned when an empty string is parsed where a value is required.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrMalformedInput is returned when the input cannot be split into URL components.
	ErrMalformedInput = grammar.ErrMalformedInput
)

const (
	// ErrPathOutsideRoot is returned by [Path.Absolute] when a ".." segment climbs above the root.
	ErrPathOutsideRoot Error = "path is outside of the root"
	// ErrInvalidPort is returned when a port is outside of [0, 65535].
	ErrInvalidPort Error = "invalid port"
	// ErrPasswordWithoutUsername is returned when a password is set on an authority without a username.
	ErrPasswordWithoutUsername Error = "cannot have a password without a username"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
