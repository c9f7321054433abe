package triprepo

import (
	"context"

	"github.com/roamly/roamly-api/internal/domain"
)

// Repository provides access to the persisted trip aggregate: trips plus
// their dependent itinerary items and messages. Participant links live in
// their own repository (participantrepo).
//
// Result ordering expectations:
// - List returns trips ordered by ID ascending.
// - ListItinerary orders by day number, then ID.
// - ListMessages orders by creation time, then ID.
type Repository interface {
	// Create persists t with a store-assigned ID and returns the stored trip.
	Create(ctx context.Context, t domain.Trip) (domain.Trip, error)

	GetByID(ctx context.Context, id domain.TripID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the stored trip. ErrNotFound if the trip is gone.
	Update(ctx context.Context, t domain.Trip) error

	// Delete removes the trip and its dependent rows. ErrNotFound if the trip
	// is gone, so repeated deletes surface as not-found rather than success.
	Delete(ctx context.Context, id domain.TripID) error

	CreateItineraryItem(ctx context.Context, it domain.ItineraryItem) (domain.ItineraryItem, error)
	GetItineraryItem(ctx context.Context, id domain.ItineraryItemID) (domain.ItineraryItem, error)
	ListItinerary(ctx context.Context, tripID domain.TripID) ([]domain.ItineraryItem, error)
	DeleteItineraryItem(ctx context.Context, id domain.ItineraryItemID) error

	CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error)
	ListMessages(ctx context.Context, tripID domain.TripID) ([]domain.Message, error)
}
