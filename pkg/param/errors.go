package param

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by declarations and by the resolution engine.
// Use errors.Is to test for a kind.
var (
	ErrUnknownParameter     = errors.New("unknown parameter")
	ErrMissingRequiredValue = errors.New("missing required value")
	ErrInvalidShape         = errors.New("invalid value shape")
	ErrInvalidValue         = errors.New("invalid value")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Error is a failure tied to a parameter. Reason is the human-readable
// message shown to the user; Kind is one of the Err* sentinels.
type Error struct {
	Kind   error
	Param  string
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func invalidValue(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidValue, Reason: fmt.Sprintf(format, args...)}
}

func invalidConfig(name, format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidConfiguration, Param: name, Reason: fmt.Sprintf(format, args...)}
}

// NewError builds an Error of the given kind for the named parameter.
func NewError(kind error, name, format string, args ...interface{}) error {
	return &Error{Kind: kind, Param: name, Reason: fmt.Sprintf(format, args...)}
}
