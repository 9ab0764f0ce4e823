package announcement

import "errors"

var ErrValidation = errors.New("validation failed")
