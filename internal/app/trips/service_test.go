package trips

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/roamly/roamly-api/internal/adapters/memory/clock"
	memparticipantrepo "github.com/roamly/roamly-api/internal/adapters/memory/participantrepo"
	memtriprepo "github.com/roamly/roamly-api/internal/adapters/memory/triprepo"
	"github.com/roamly/roamly-api/internal/domain"
)

const (
	alice = domain.UserID(1)
	bob   = domain.UserID(2)
)

func newTestService(t *testing.T) (*Service, *memclock.ManualClock) {
	t.Helper()
	clk := memclock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewService(memtriprepo.NewRepo(), memparticipantrepo.NewRepo(), clk), clk
}

func mustCreateTrip(t *testing.T, svc *Service, owner domain.UserID) domain.Trip {
	t.Helper()
	trip, err := svc.Create(context.Background(), owner, CreateTripInput{
		Title:       "Coastal loop",
		Origin:      "Lisbon",
		Destination: "Porto",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return trip
}

func assertAppError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want *trips.Error", err)
	}
	if appErr.Status != status || appErr.Code != code {
		t.Fatalf("got %d/%s, want %d/%s", appErr.Status, appErr.Code, status, code)
	}
}

func TestCreateTripValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, CreateTripInput{Title: "  ", Origin: "A", Destination: "B"})
	assertAppError(t, err, 400, "VALIDATION_ERROR")

	_, err = svc.Create(ctx, alice, CreateTripInput{Title: "T", Origin: "", Destination: "B"})
	assertAppError(t, err, 400, "VALIDATION_ERROR")

	start := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -3)
	_, err = svc.Create(ctx, alice, CreateTripInput{Title: "T", Origin: "A", Destination: "B", StartDate: &start, EndDate: &end})
	assertAppError(t, err, 400, "VALIDATION_ERROR")
}

func TestCreateTripStampsOwner(t *testing.T) {
	t.Parallel()
	svc, clk := newTestService(t)

	trip := mustCreateTrip(t, svc, alice)
	if trip.OwnerID != alice {
		t.Fatalf("owner = %d, want %d", trip.OwnerID, alice)
	}
	if !trip.CreatedAt.Equal(clk.Now()) {
		t.Fatalf("createdAt = %v, want clock time", trip.CreatedAt)
	}
}

func TestUpdateTripOwnership(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	trip := mustCreateTrip(t, svc, alice)

	_, err := svc.Update(ctx, bob, trip.ID, UpdateTripInput{Title: Some("Hijacked")})
	assertAppError(t, err, 403, "ACCESS_DENIED")

	// Unmodified after the denied attempt.
	got, err := svc.Get(ctx, trip.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Coastal loop" {
		t.Fatalf("title = %q, want unchanged", got.Title)
	}

	updated, err := svc.Update(ctx, alice, trip.ID, UpdateTripInput{Title: Some("Coastal loop v2")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Coastal loop v2" {
		t.Fatalf("title = %q", updated.Title)
	}
}

func TestUpdateTripPartialFieldIsolation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	desc := "sea views"
	days := 5
	trip, err := svc.Create(ctx, alice, CreateTripInput{
		Title:        "Coastal loop",
		Description:  &desc,
		Origin:       "Lisbon",
		Destination:  "Porto",
		DurationDays: &days,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Patch only the description; nothing else may move.
	updated, err := svc.Update(ctx, alice, trip.ID, UpdateTripInput{Description: Null[string]()})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != nil {
		t.Fatalf("description = %v, want cleared", *updated.Description)
	}
	if updated.Title != trip.Title || updated.Origin != trip.Origin || updated.Destination != trip.Destination {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if updated.DurationDays == nil || *updated.DurationDays != days {
		t.Fatalf("durationDays = %v, want %d", updated.DurationDays, days)
	}

	_, err = svc.Update(ctx, alice, trip.ID, UpdateTripInput{Title: Null[string]()})
	assertAppError(t, err, 400, "VALIDATION_ERROR")
}

func TestDeleteTripOwnership(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	trip := mustCreateTrip(t, svc, alice)

	err := svc.Delete(ctx, bob, trip.ID)
	assertAppError(t, err, 403, "ACCESS_DENIED")

	if err := svc.Delete(ctx, alice, trip.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err = svc.Delete(ctx, alice, trip.ID)
	assertAppError(t, err, 404, "TRIP_NOT_FOUND")
}

func TestJoinLeaveLifecycle(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	trip := mustCreateTrip(t, svc, alice)

	if _, err := svc.Join(ctx, bob, trip.ID); err != nil {
		t.Fatalf("Join: %v", err)
	}
	_, err := svc.Join(ctx, bob, trip.ID)
	assertAppError(t, err, 400, "ALREADY_PARTICIPANT")

	ps, err := svc.ListParticipants(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListParticipants: %v", err)
	}
	if len(ps) != 1 || ps[0].UserID != bob {
		t.Fatalf("participants = %+v, want just bob", ps)
	}

	if err := svc.Leave(ctx, bob, trip.ID); err != nil {
		t.Fatalf("Leave: %v", err)
	}
	err = svc.Leave(ctx, bob, trip.ID)
	assertAppError(t, err, 404, "NOT_A_PARTICIPANT")

	_, err = svc.Join(ctx, bob, domain.TripID(999))
	assertAppError(t, err, 404, "TRIP_NOT_FOUND")
}

func TestItineraryParentOwnership(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	trip := mustCreateTrip(t, svc, alice)

	_, err := svc.AddItineraryItem(ctx, bob, trip.ID, CreateItineraryItemInput{DayNumber: 1, Location: "Sintra"})
	assertAppError(t, err, 403, "ACCESS_DENIED")

	it, err := svc.AddItineraryItem(ctx, alice, trip.ID, CreateItineraryItemInput{DayNumber: 1, Location: "Sintra"})
	if err != nil {
		t.Fatalf("AddItineraryItem: %v", err)
	}

	err = svc.DeleteItineraryItem(ctx, bob, trip.ID, it.ID)
	assertAppError(t, err, 403, "ACCESS_DENIED")

	if err := svc.DeleteItineraryItem(ctx, alice, trip.ID, it.ID); err != nil {
		t.Fatalf("DeleteItineraryItem: %v", err)
	}
	err = svc.DeleteItineraryItem(ctx, alice, trip.ID, it.ID)
	assertAppError(t, err, 404, "ITINERARY_ITEM_NOT_FOUND")
}

func TestDeleteItineraryItemAcrossTrips(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	tripA := mustCreateTrip(t, svc, alice)
	tripB := mustCreateTrip(t, svc, alice)

	it, err := svc.AddItineraryItem(ctx, alice, tripA.ID, CreateItineraryItemInput{DayNumber: 2, Location: "Obidos"})
	if err != nil {
		t.Fatalf("AddItineraryItem: %v", err)
	}

	// The item exists, but not under tripB's path.
	err = svc.DeleteItineraryItem(ctx, alice, tripB.ID, it.ID)
	assertAppError(t, err, 404, "ITINERARY_ITEM_NOT_FOUND")
}

func TestMessages(t *testing.T) {
	t.Parallel()
	svc, clk := newTestService(t)
	ctx := context.Background()

	trip := mustCreateTrip(t, svc, alice)

	_, err := svc.PostMessage(ctx, bob, trip.ID, "  ")
	assertAppError(t, err, 400, "VALIDATION_ERROR")

	first, err := svc.PostMessage(ctx, bob, trip.ID, "anyone up for carpooling?")
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	clk.Advance(time.Minute)
	if _, err := svc.PostMessage(ctx, alice, trip.ID, "yes, leaving from downtown"); err != nil {
		t.Fatalf("PostMessage: %v", err)
	}

	msgs, err := svc.ListMessages(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2", len(msgs))
	}
	if msgs[0].ID != first.ID {
		t.Fatalf("messages out of order: %+v", msgs)
	}

	_, err = svc.PostMessage(ctx, bob, domain.TripID(999), "hello?")
	assertAppError(t, err, 404, "TRIP_NOT_FOUND")
}

func TestDeleteTripRemovesParticipantLinks(t *testing.T) {
	t.Parallel()
	clk := memclock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	participants := memparticipantrepo.NewRepo()
	svc := NewService(memtriprepo.NewRepo(), participants, clk)
	ctx := context.Background()

	trip := mustCreateTrip(t, svc, alice)
	if _, err := svc.Join(ctx, bob, trip.ID); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := svc.Delete(ctx, alice, trip.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ps, err := participants.ListByTrip(ctx, trip.ID)
	if err != nil || len(ps) != 0 {
		t.Fatalf("links after trip delete = %+v, %v, want none", ps, err)
	}
}
