package domain

import "time"

type Trip struct {
	ID TripID

	Title       string
	Description *string

	// StartDate/EndDate carry date-only semantics at the edges; nil means unset.
	StartDate *time.Time
	EndDate   *time.Time

	Origin      string
	Destination string

	DurationDays *int

	// OwnerID is the owner stamp recorded at creation and checked on mutation.
	OwnerID UserID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Participant is a trip membership link: at most one per (trip, user) pair.
type Participant struct {
	TripID TripID
	UserID UserID

	JoinedAt time.Time
}

// ItineraryItem is owned transitively through its parent trip; it carries no
// owner field of its own.
type ItineraryItem struct {
	ID     ItineraryItemID
	TripID TripID

	DayNumber   int
	Location    string
	Description *string
}

type Message struct {
	ID     MessageID
	TripID TripID

	SenderID UserID
	Content  string

	CreatedAt time.Time
}
