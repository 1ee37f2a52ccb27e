package rating

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("already rated")
	ErrTooEarly   = errors.New("booking not finished")
	ErrValidation = errors.New("validation error")
)
