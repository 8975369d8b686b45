package validators

import (
	"errors"
	"unicode/utf8"
)

const MinPasswordLength = 6

var (
	ErrPasswordEmpty        = errors.New("Password is required")
	ErrPasswordTooShort     = errors.New("Password must be at least 6 characters long")
	ErrPasswordConfirmEmpty = errors.New("Password confirmation is required")
	ErrPasswordMismatch     = errors.New("Passwords do not match")
)

func PasswordPresent(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	return nil
}

func PasswordValidator(p string) error {
	if err := PasswordPresent(p); err != nil {
		return err
	}

	if utf8.RuneCountInString(p) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// PasswordConfirmValidator compares the password with its confirmation
func PasswordConfirmValidator(p, confirm string) error {
	if p != confirm {
		return ErrPasswordMismatch
	}

	return nil
}
