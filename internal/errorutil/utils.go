package errorutil

import "errors"

// IsGrammarErr returns true if the error is a grammar error.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}

// IsInvalidArgumentErr returns true if the error wraps [ErrInvalidArgument].
func IsInvalidArgumentErr(err error) bool { return errors.Is(err, ErrInvalidArgument) }
