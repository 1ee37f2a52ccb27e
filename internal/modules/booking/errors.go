package booking

import "errors"

var (
	ErrInconsistentDates       = errors.New("inconsistent dates")
	ErrPastDateBooking         = errors.New("booking in the past")
	ErrNotFound                = errors.New("not found")
	ErrInactiveParty           = errors.New("inactive party")
	ErrCapacityExceeded        = errors.New("capacity exceeded")
	ErrForbidden               = errors.New("forbidden")
	ErrValidation              = errors.New("validation error")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
