package uri

import (
	"errors"
	"fmt"
)

// Error is the error type returned by this package's fallible operations.
type Error interface {
	error
}

// Validation errors. Every parse/validate/builder failure wraps one of
// these with errors.Join, so callers can test for a specific failure kind
// with errors.Is while still getting a human-readable detail message.
var (
	ErrNoSchemeFound      = Error(errors.New("no scheme found in URI"))
	ErrInvalidURI         = Error(errors.New("not a valid URI"))
	ErrInvalidScheme      = Error(errors.New("invalid scheme in URI"))
	ErrInvalidAuthority   = Error(errors.New("invalid authority in URI"))
	ErrInvalidQuery       = Error(errors.New("invalid query string in URI"))
	ErrInvalidFragment    = Error(errors.New("invalid fragment in URI"))
	ErrInvalidPath        = Error(errors.New("invalid path in URI"))
	ErrInvalidHost        = Error(errors.New("invalid host in URI"))
	ErrInvalidHostAddress = Error(errors.New("invalid address for host"))
	ErrInvalidPort        = Error(errors.New("invalid port in URI"))
	ErrInvalidUserInfo    = Error(errors.New("invalid userinfo in URI"))
	ErrMissingHost        = Error(errors.New("missing host in URI"))
	ErrInvalidDNSName     = Error(errors.New("invalid host (DNS name)"))
	ErrInvalidEscaping    = Error(errors.New("invalid percent-escaping sequence"))
)

// errorsJoin wraps a sentinel Error with one or more causes, preserving
// errors.Is against the sentinel. It exists as a thin local alias so call
// sites read like the rest of the validator cascade (err := errorsJoin(Err..., err)).
func errorsJoin(errs ...error) error {
	return errors.Join(errs...)
}

// errNewf builds a detail error for use alongside a sentinel in errorsJoin.
func errNewf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
