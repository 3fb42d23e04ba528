package user

import "errors"

var (
	ErrNotFound       = errors.New("user not found")
	ErrForbidden      = errors.New("not allowed to access this user")
	ErrEmailExists    = errors.New("email already exists")
	ErrUsernameExists = errors.New("username already exists")
)
