package booking

import "errors"

var (
	ErrValidation        = errors.New("invalid booking data")
	ErrNotFound          = errors.New("booking not found")
	ErrForbidden         = errors.New("not allowed to access this booking")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown booking status")
)
