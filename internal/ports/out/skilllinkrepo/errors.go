package skilllinkrepo

import "errors"

var (
	// ErrNotFound indicates no link exists for (skill, warrior).
	ErrNotFound = errors.New("skill link not found")

	// ErrAlreadyLinked indicates a link already exists for (skill, warrior).
	ErrAlreadyLinked = errors.New("skill link already exists")
)
