package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorForbidden = errors.New("forbidden")

	// Credential errors.
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserBanned      = errors.New("user is banned")

	// Session errors.
	ErrInvalidToken = errors.New("invalid token")

	// Password hash errors.
	ErrHashMismatch  = errors.New("password does not match hash")
	ErrMalformedHash = errors.New("malformed password hash")

	// Role errors.
	ErrUnknownRole = errors.New("unknown role")
)
