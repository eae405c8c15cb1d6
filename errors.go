package spendwise

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Login when no account exists for the email.
var ErrNotFound = errors.New("email not found, please sign up first")

// ErrUnauthorized is returned by Login when the password does not verify.
var ErrUnauthorized = errors.New("incorrect password")

// ValidationError reports bad or missing user input. The operation is aborted
// before any state change, and the message is meant to be shown to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// validationf creates a ValidationError with a formatted message.
func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
