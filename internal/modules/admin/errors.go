package admin

import "errors"

var (
	ErrNotFound          = errors.New("not_found")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrValidation        = errors.New("validation error")
	ErrUserInUse         = errors.New("user has linked records")
)
