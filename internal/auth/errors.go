// Package auth handles user registration, login, and bearer tokens.
package auth

import "errors"

var (
	// ErrUserExists indicates the email is already registered.
	ErrUserExists = errors.New("user already exists")

	// ErrNotFound indicates no user has the given email.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates a malformed, forged, or expired token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingField indicates a required registration or login field was empty.
	ErrMissingField = errors.New("missing required field")
)
