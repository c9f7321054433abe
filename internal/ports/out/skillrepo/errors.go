package skillrepo

import "errors"

// ErrNotFound indicates the requested skill does not exist.
var ErrNotFound = errors.New("skill not found")
