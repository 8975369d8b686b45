// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"errors"
	"strings"
)

var (
	ErrEmailEmpty   = errors.New("Email is required")
	ErrEmailInvalid = errors.New("Invalid email format")
)

// EmailPresent only checks that an email was provided
func EmailPresent(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	return nil
}

// EmailValidator is a loose shape check. Anything with an @ and a dot passes,
// the address itself is never verified
func EmailValidator(e string) error {
	if err := EmailPresent(e); err != nil {
		return err
	}

	if !strings.Contains(e, "@") || !strings.Contains(e, ".") {
		return ErrEmailInvalid
	}

	return nil
}
