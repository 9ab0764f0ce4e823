package events

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not_found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid_status_transition")
)
