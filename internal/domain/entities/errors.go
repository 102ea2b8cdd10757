package entities

import "errors"

// Domain errors
var (
	// Share errors
	ErrShareNotFound = errors.New("shared result not found")
	ErrShareExpired  = errors.New("shared result expired")
)
