package trips

import "time"

// Optional is a tri-state field used to distinguish:
// - unspecified (omitted)
// - specified as null
// - specified with a value
type Optional[T any] struct {
	specified bool
	isNull    bool
	value     T
}

func Unspecified[T any]() Optional[T] { return Optional[T]{} }
func Null[T any]() Optional[T]        { return Optional[T]{specified: true, isNull: true} }
func Some[T any](v T) Optional[T]     { return Optional[T]{specified: true, value: v} }

func (o Optional[T]) IsSpecified() bool { return o.specified }
func (o Optional[T]) IsNull() bool      { return o.specified && o.isNull }
func (o Optional[T]) Value() T          { return o.value }

type CreateTripInput struct {
	Title       string
	Description *string

	// StartDate/EndDate carry date-only values; nil means unset.
	StartDate *time.Time
	EndDate   *time.Time

	Origin      string
	Destination string

	DurationDays *int
}

type UpdateTripInput struct {
	// Title cannot be null: a trip always has one.
	Title Optional[string]

	Description Optional[string]
	StartDate   Optional[time.Time]
	EndDate     Optional[time.Time]

	// Origin and Destination cannot be null either.
	Origin      Optional[string]
	Destination Optional[string]

	DurationDays Optional[int]
}

type CreateItineraryItemInput struct {
	DayNumber   int
	Location    string
	Description *string
}
