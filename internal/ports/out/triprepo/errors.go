package triprepo

import "errors"

var (
	// ErrNotFound indicates the requested trip does not exist.
	ErrNotFound = errors.New("trip not found")

	// ErrItemNotFound indicates the requested itinerary item does not exist.
	ErrItemNotFound = errors.New("itinerary item not found")
)
