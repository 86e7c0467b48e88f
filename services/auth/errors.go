package auth

import "errors"

// Authentication and registration failures, mapped to localized messages at
// the handler boundary. ErrInvalidCredentials covers both an unknown email
// and a wrong password so responses never reveal whether an account exists.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password does not meet complexity requirements")
	ErrNameTooShort       = errors.New("name must be at least 2 characters")
	ErrEmailTaken         = errors.New("email already registered")
)
