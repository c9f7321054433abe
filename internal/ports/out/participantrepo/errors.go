package participantrepo

import "errors"

var (
	// ErrNotFound indicates no membership link exists for (trip, user).
	ErrNotFound = errors.New("participant link not found")

	// ErrAlreadyJoined indicates a membership link already exists for (trip, user).
	ErrAlreadyJoined = errors.New("participant link already exists")
)
