package errors

import (
	"errors"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrMissingFields      = errors.New("login and password are required")
	ErrDuplicateIdentity  = errors.New("login or email already in use")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("record not found")
)
