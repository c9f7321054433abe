package trips

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/roamly/roamly-api/internal/domain"
	clockport "github.com/roamly/roamly-api/internal/ports/out/clock"
	"github.com/roamly/roamly-api/internal/ports/out/participantrepo"
	"github.com/roamly/roamly-api/internal/ports/out/triprepo"
)

type Service struct {
	trips        triprepo.Repository
	participants participantrepo.Repository
	clk          clockport.Clock
}

func NewService(trips triprepo.Repository, participants participantrepo.Repository, clk clockport.Clock) *Service {
	return &Service{trips: trips, participants: participants, clk: clk}
}

func (s *Service) Create(ctx context.Context, caller domain.UserID, in CreateTripInput) (domain.Trip, error) {
	title := domain.NormalizeHumanName(in.Title)
	if title == "" {
		return domain.Trip{}, validationError("title", "must be non-empty")
	}
	origin := strings.TrimSpace(in.Origin)
	if origin == "" {
		return domain.Trip{}, validationError("origin", "must be non-empty")
	}
	destination := strings.TrimSpace(in.Destination)
	if destination == "" {
		return domain.Trip{}, validationError("destination", "must be non-empty")
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return domain.Trip{}, validationError("end_date", "must not precede start_date")
	}
	if in.DurationDays != nil && *in.DurationDays < 1 {
		return domain.Trip{}, validationError("duration_days", "must be positive")
	}

	now := s.clk.Now().UTC()
	t := domain.Trip{
		Title:        title,
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Origin:       origin,
		Destination:  destination,
		DurationDays: in.DurationDays,
		OwnerID:      caller,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.trips.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, tripID domain.TripID) (domain.Trip, error) {
	return s.getTrip(ctx, tripID)
}

func (s *Service) List(ctx context.Context) ([]domain.Trip, error) {
	return s.trips.List(ctx)
}

func (s *Service) Update(ctx context.Context, caller domain.UserID, tripID domain.TripID, in UpdateTripInput) (domain.Trip, error) {
	t, err := s.getTrip(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}
	if err := authorizeOwner(t.OwnerID, caller); err != nil {
		return domain.Trip{}, err
	}

	if in.Title.IsSpecified() {
		if in.Title.IsNull() {
			return domain.Trip{}, validationError("title", "cannot be null")
		}
		title := domain.NormalizeHumanName(in.Title.Value())
		if title == "" {
			return domain.Trip{}, validationError("title", "must be non-empty")
		}
		t.Title = title
	}
	if in.Origin.IsSpecified() {
		if in.Origin.IsNull() {
			return domain.Trip{}, validationError("origin", "cannot be null")
		}
		origin := strings.TrimSpace(in.Origin.Value())
		if origin == "" {
			return domain.Trip{}, validationError("origin", "must be non-empty")
		}
		t.Origin = origin
	}
	if in.Destination.IsSpecified() {
		if in.Destination.IsNull() {
			return domain.Trip{}, validationError("destination", "cannot be null")
		}
		destination := strings.TrimSpace(in.Destination.Value())
		if destination == "" {
			return domain.Trip{}, validationError("destination", "must be non-empty")
		}
		t.Destination = destination
	}

	applyNullableString(&t.Description, in.Description)
	applyNullableTime(&t.StartDate, in.StartDate)
	applyNullableTime(&t.EndDate, in.EndDate)

	if in.DurationDays.IsSpecified() {
		if in.DurationDays.IsNull() {
			t.DurationDays = nil
		} else {
			v := in.DurationDays.Value()
			if v < 1 {
				return domain.Trip{}, validationError("duration_days", "must be positive")
			}
			t.DurationDays = &v
		}
	}

	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return domain.Trip{}, validationError("end_date", "must not precede start_date")
	}

	t.UpdatedAt = s.clk.Now().UTC()
	if err := s.trips.Update(ctx, t); err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			return domain.Trip{}, tripNotFound()
		}
		return domain.Trip{}, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, caller domain.UserID, tripID domain.TripID) error {
	t, err := s.getTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(t.OwnerID, caller); err != nil {
		return err
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			return tripNotFound()
		}
		return err
	}
	// Participant links live in their own store and do not cascade there.
	return s.participants.RemoveAllForTrip(ctx, tripID)
}

// Join adds the caller to a trip's participant set. Joining twice is a
// conflict; the link repository's duplicate-key signal is authoritative.
func (s *Service) Join(ctx context.Context, caller domain.UserID, tripID domain.TripID) (domain.Participant, error) {
	if _, err := s.getTrip(ctx, tripID); err != nil {
		return domain.Participant{}, err
	}
	p := domain.Participant{
		TripID:   tripID,
		UserID:   caller,
		JoinedAt: s.clk.Now().UTC(),
	}
	if err := s.participants.Add(ctx, p); err != nil {
		if errors.Is(err, participantrepo.ErrAlreadyJoined) {
			return domain.Participant{}, &Error{Status: 400, Code: "ALREADY_PARTICIPANT", Message: "already a participant of this trip"}
		}
		return domain.Participant{}, err
	}
	return p, nil
}

func (s *Service) Leave(ctx context.Context, caller domain.UserID, tripID domain.TripID) error {
	if _, err := s.getTrip(ctx, tripID); err != nil {
		return err
	}
	if err := s.participants.Remove(ctx, tripID, caller); err != nil {
		if errors.Is(err, participantrepo.ErrNotFound) {
			return &Error{Status: 404, Code: "NOT_A_PARTICIPANT", Message: "not a participant of this trip"}
		}
		return err
	}
	return nil
}

func (s *Service) ListParticipants(ctx context.Context, tripID domain.TripID) ([]domain.Participant, error) {
	if _, err := s.getTrip(ctx, tripID); err != nil {
		return nil, err
	}
	return s.participants.ListByTrip(ctx, tripID)
}

// AddItineraryItem requires ownership of the parent trip; items carry no
// owner of their own.
func (s *Service) AddItineraryItem(ctx context.Context, caller domain.UserID, tripID domain.TripID, in CreateItineraryItemInput) (domain.ItineraryItem, error) {
	t, err := s.getTrip(ctx, tripID)
	if err != nil {
		return domain.ItineraryItem{}, err
	}
	if err := authorizeOwner(t.OwnerID, caller); err != nil {
		return domain.ItineraryItem{}, err
	}
	if in.DayNumber < 1 {
		return domain.ItineraryItem{}, validationError("day_number", "must be positive")
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return domain.ItineraryItem{}, validationError("location", "must be non-empty")
	}

	it := domain.ItineraryItem{
		TripID:      tripID,
		DayNumber:   in.DayNumber,
		Location:    location,
		Description: in.Description,
	}
	created, err := s.trips.CreateItineraryItem(ctx, it)
	if err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			return domain.ItineraryItem{}, tripNotFound()
		}
		return domain.ItineraryItem{}, err
	}
	return created, nil
}

func (s *Service) ListItinerary(ctx context.Context, tripID domain.TripID) ([]domain.ItineraryItem, error) {
	return s.trips.ListItinerary(ctx, tripID)
}

func (s *Service) DeleteItineraryItem(ctx context.Context, caller domain.UserID, tripID domain.TripID, itemID domain.ItineraryItemID) error {
	t, err := s.getTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(t.OwnerID, caller); err != nil {
		return err
	}

	it, err := s.trips.GetItineraryItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, triprepo.ErrItemNotFound) {
			return itemNotFound()
		}
		return err
	}
	// An item under a different trip is invisible at this path.
	if it.TripID != tripID {
		return itemNotFound()
	}
	if err := s.trips.DeleteItineraryItem(ctx, itemID); err != nil {
		if errors.Is(err, triprepo.ErrItemNotFound) {
			return itemNotFound()
		}
		return err
	}
	return nil
}

// PostMessage requires authentication and an existing trip but no ownership:
// any signed-in user may post.
func (s *Service) PostMessage(ctx context.Context, caller domain.UserID, tripID domain.TripID, content string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, validationError("content", "must be non-empty")
	}
	m := domain.Message{
		TripID:    tripID,
		SenderID:  caller,
		Content:   content,
		CreatedAt: s.clk.Now().UTC(),
	}
	created, err := s.trips.CreateMessage(ctx, m)
	if err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			return domain.Message{}, tripNotFound()
		}
		return domain.Message{}, err
	}
	return created, nil
}

func (s *Service) ListMessages(ctx context.Context, tripID domain.TripID) ([]domain.Message, error) {
	return s.trips.ListMessages(ctx, tripID)
}

// --- helpers ---

func (s *Service) getTrip(ctx context.Context, tripID domain.TripID) (domain.Trip, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			return domain.Trip{}, tripNotFound()
		}
		return domain.Trip{}, err
	}
	return t, nil
}

func authorizeOwner(owner, caller domain.UserID) error {
	if owner != caller {
		return &Error{Status: 403, Code: "ACCESS_DENIED", Message: "not enough permissions"}
	}
	return nil
}

func tripNotFound() *Error {
	return &Error{Status: 404, Code: "TRIP_NOT_FOUND", Message: "trip not found"}
}

func itemNotFound() *Error {
	return &Error{Status: 404, Code: "ITINERARY_ITEM_NOT_FOUND", Message: "itinerary item not found"}
}

func validationError(field, msg string) *Error {
	return &Error{Status: 400, Code: "VALIDATION_ERROR", Message: "invalid " + field, Details: map[string]any{field: msg}}
}

func applyNullableString(dst **string, o Optional[string]) {
	if !o.IsSpecified() {
		return
	}
	if o.IsNull() {
		*dst = nil
		return
	}
	v := o.Value()
	*dst = &v
}

func applyNullableTime(dst **time.Time, o Optional[time.Time]) {
	if !o.IsSpecified() {
		return
	}
	if o.IsNull() {
		*dst = nil
		return
	}
	v := o.Value()
	*dst = &v
}
