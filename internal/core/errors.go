package core

import "errors"

// Shared error taxonomy. Services wrap these with fmt.Errorf("...: %w"),
// handlers map them onto HTTP status codes.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("record not found")
	ErrStorage    = errors.New("storage failure")
)
