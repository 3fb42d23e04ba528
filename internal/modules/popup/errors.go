package popup

import "errors"

var (
	ErrNotFound   = errors.New("popup not found")
	ErrValidation = errors.New("invalid popup data")
)
