package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
)
