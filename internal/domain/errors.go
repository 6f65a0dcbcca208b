package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("duplicate resource")
	ErrNotConfigured = errors.New("integration not configured")
)
