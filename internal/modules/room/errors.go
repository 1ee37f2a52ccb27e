package room

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUniquenessConflict = errors.New("uniqueness conflict")
	ErrValidation         = errors.New("validation error")
)
