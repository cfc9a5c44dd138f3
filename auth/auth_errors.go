package auth

import "errors"

var (
	// Contract failures: the server answered, but not in the agreed shape.
	// Distinct from transport failures so a client/server mismatch reads as
	// a bug, not a user error.
	ErrInvalidLoginResponse    = errors.New("invalid login response")
	ErrInvalidRegisterResponse = errors.New("invalid register response")
)
