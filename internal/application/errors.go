package application

import "errors"

// Domain failures translated by HTTP handlers into status codes. Storage
// failures are anything else and surface as internal errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)
