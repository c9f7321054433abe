package participantrepo

import (
	"context"

	"github.com/roamly/roamly-api/internal/domain"
)

// Repository maintains trip membership links keyed by (trip, user).
//
// The store's composite primary key is the authoritative de-duplication
// mechanism: implementations must translate a duplicate-key write into
// ErrAlreadyJoined rather than surfacing it as an unexpected error.
type Repository interface {
	// Add inserts the link. ErrAlreadyJoined if a link for (trip, user)
	// already exists.
	Add(ctx context.Context, p domain.Participant) error

	// Remove deletes the link. ErrNotFound if it does not exist.
	Remove(ctx context.Context, tripID domain.TripID, userID domain.UserID) error

	// RemoveAllForTrip deletes every link for a trip. Removing links for a
	// trip that has none is not an error.
	RemoveAllForTrip(ctx context.Context, tripID domain.TripID) error

	// ListByTrip returns links for a trip ordered by join time, then user ID.
	ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Participant, error)
}
