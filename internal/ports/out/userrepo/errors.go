package userrepo

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates a user already exists with the provided username.
	ErrUsernameTaken = errors.New("username already taken")
)
