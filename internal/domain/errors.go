package domain

import "errors"

// Errors shared by every persistence backend.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
)
