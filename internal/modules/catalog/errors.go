package catalog

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("name already in use")
	ErrInUse         = errors.New("resource is referenced by existing records")
)
