package repository

import "errors"

// Sentinel errors surfaced by repository implementations. Storage-level
// failures other than these are passed through unchanged.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate record")
)
