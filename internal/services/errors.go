package services

import "errors"

var (
	// ErrUnauthorized covers missing, unknown and expired tokens.
	ErrUnauthorized = errors.New("invalid or expired token")
	// ErrInvalidInput covers domain-invalid request data, rejected
	// before any store write.
	ErrInvalidInput = errors.New("invalid input")
)
