package service

import "errors"

// Expected, non-fatal outcomes. Handlers map these onto status codes;
// anything else is a 500.
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrNotFound            = errors.New("user not found")
)
