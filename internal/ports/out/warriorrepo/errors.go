package warriorrepo

import "errors"

var (
	// ErrNotFound indicates the requested warrior does not exist.
	ErrNotFound = errors.New("warrior not found")

	// ErrProfessionNotFound indicates the referenced profession does not exist.
	ErrProfessionNotFound = errors.New("profession not found")
)
