// Package contracttest holds repository contract suites shared by the memory
// and postgres adapters: every implementation of a port must satisfy the
// same observable behavior, including sentinel errors and list ordering.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roamly/roamly-api/internal/domain"
	participantrepoport "github.com/roamly/roamly-api/internal/ports/out/participantrepo"
	skilllinkrepoport "github.com/roamly/roamly-api/internal/ports/out/skilllinkrepo"
	skillrepoport "github.com/roamly/roamly-api/internal/ports/out/skillrepo"
	triprepoport "github.com/roamly/roamly-api/internal/ports/out/triprepo"
	userrepoport "github.com/roamly/roamly-api/internal/ports/out/userrepo"
	warriorrepoport "github.com/roamly/roamly-api/internal/ports/out/warriorrepo"
)

type CleanupFunc = func()

type UserRepoFactory func(t *testing.T) (userrepoport.Repository, CleanupFunc)
type TripRepoFactory func(t *testing.T) (triprepoport.Repository, CleanupFunc)
type ParticipantRepoFactory func(t *testing.T) (participantrepoport.Repository, CleanupFunc)
type SkillLinkRepoFactory func(t *testing.T) (skilllinkrepoport.Repository, CleanupFunc)
type WarriorRepoFactory func(t *testing.T) (warriorrepoport.Repository, CleanupFunc)
type SkillRepoFactory func(t *testing.T) (skillrepoport.Repository, CleanupFunc)

func RunUserRepo(t *testing.T, newRepo UserRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(1000, 0).UTC()
	created, err := repo.Create(ctx, userrepoport.User{
		Username:       "alice",
		PasswordDigest: "digest-a",
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected store-assigned ID")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil || got.Username != "alice" || got.PasswordDigest != "digest-a" {
		t.Fatalf("GetByID: %+v, %v", got, err)
	}
	if _, err := repo.GetByUsername(ctx, "alice"); err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}

	// Username uniqueness, including case-insensitively.
	_, err = repo.Create(ctx, userrepoport.User{
		Username:       "alice",
		PasswordDigest: "digest-b",
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if !errors.Is(err, userrepoport.ErrUsernameTaken) {
		t.Fatalf("duplicate Create: %v, want ErrUsernameTaken", err)
	}
	_, err = repo.Create(ctx, userrepoport.User{
		Username:       "Alice",
		PasswordDigest: "digest-c",
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if !errors.Is(err, userrepoport.ErrUsernameTaken) {
		t.Fatalf("mixed-case duplicate Create: %v, want ErrUsernameTaken", err)
	}
	if got, err := repo.GetByUsername(ctx, "ALICE"); err != nil || got.ID != created.ID {
		t.Fatalf("mixed-case GetByUsername: %+v, %v", got, err)
	}

	if _, err := repo.GetByID(ctx, domain.UserID(9999)); !errors.Is(err, userrepoport.ErrNotFound) {
		t.Fatalf("GetByID missing: %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, userrepoport.ErrNotFound) {
		t.Fatalf("GetByUsername missing: %v, want ErrNotFound", err)
	}
}

func RunTripRepo(t *testing.T, newRepo TripRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(1000, 0).UTC()
	owner := domain.UserID(1)
	trip, err := repo.Create(ctx, domain.Trip{
		Title:       "Coastal loop",
		Origin:      "Lisbon",
		Destination: "Porto",
		OwnerID:     owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if trip.ID == 0 {
		t.Fatalf("expected store-assigned ID")
	}

	// Dependent rows.
	itemDay2, err := repo.CreateItineraryItem(ctx, domain.ItineraryItem{TripID: trip.ID, DayNumber: 2, Location: "Obidos"})
	if err != nil {
		t.Fatalf("CreateItineraryItem: %v", err)
	}
	itemDay1, err := repo.CreateItineraryItem(ctx, domain.ItineraryItem{TripID: trip.ID, DayNumber: 1, Location: "Sintra"})
	if err != nil {
		t.Fatalf("CreateItineraryItem: %v", err)
	}
	items, err := repo.ListItinerary(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListItinerary: %v", err)
	}
	if len(items) != 2 || items[0].ID != itemDay1.ID || items[1].ID != itemDay2.ID {
		t.Fatalf("itinerary not ordered by day: %+v", items)
	}

	if _, err := repo.CreateMessage(ctx, domain.Message{TripID: trip.ID, SenderID: owner, Content: "hello", CreatedAt: now}); err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}

	// Parent existence is enforced for dependents.
	if _, err := repo.CreateItineraryItem(ctx, domain.ItineraryItem{TripID: domain.TripID(9999), DayNumber: 1, Location: "x"}); !errors.Is(err, triprepoport.ErrNotFound) {
		t.Fatalf("CreateItineraryItem orphan: %v, want ErrNotFound", err)
	}
	if _, err := repo.CreateMessage(ctx, domain.Message{TripID: domain.TripID(9999), SenderID: owner, Content: "x", CreatedAt: now}); !errors.Is(err, triprepoport.ErrNotFound) {
		t.Fatalf("CreateMessage orphan: %v, want ErrNotFound", err)
	}

	// Deleting the trip removes its dependents.
	if err := repo.Delete(ctx, trip.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, trip.ID); !errors.Is(err, triprepoport.ErrNotFound) {
		t.Fatalf("second Delete: %v, want ErrNotFound", err)
	}
	if _, err := repo.GetItineraryItem(ctx, itemDay1.ID); !errors.Is(err, triprepoport.ErrItemNotFound) {
		t.Fatalf("item survived trip delete: %v, want ErrItemNotFound", err)
	}
	msgs, err := repo.ListMessages(ctx, trip.ID)
	if err != nil || len(msgs) != 0 {
		t.Fatalf("messages survived trip delete: %+v, %v", msgs, err)
	}
}

func RunParticipantRepo(t *testing.T, newRepo ParticipantRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	tripID := domain.TripID(1)
	now := time.Unix(1000, 0).UTC()

	if err := repo.Add(ctx, domain.Participant{TripID: tripID, UserID: 10, JoinedAt: now}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// The composite key rejects a second identical link.
	err := repo.Add(ctx, domain.Participant{TripID: tripID, UserID: 10, JoinedAt: now.Add(time.Hour)})
	if !errors.Is(err, participantrepoport.ErrAlreadyJoined) {
		t.Fatalf("duplicate Add: %v, want ErrAlreadyJoined", err)
	}
	// Same user on another trip is fine.
	if err := repo.Add(ctx, domain.Participant{TripID: domain.TripID(2), UserID: 10, JoinedAt: now}); err != nil {
		t.Fatalf("Add other trip: %v", err)
	}
	if err := repo.Add(ctx, domain.Participant{TripID: tripID, UserID: 11, JoinedAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("Add second user: %v", err)
	}

	ps, err := repo.ListByTrip(ctx, tripID)
	if err != nil {
		t.Fatalf("ListByTrip: %v", err)
	}
	if len(ps) != 2 || ps[0].UserID != 10 || ps[1].UserID != 11 {
		t.Fatalf("participants = %+v, want join order", ps)
	}

	if err := repo.Remove(ctx, tripID, 10); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := repo.Remove(ctx, tripID, 10); !errors.Is(err, participantrepoport.ErrNotFound) {
		t.Fatalf("second Remove: %v, want ErrNotFound", err)
	}

	// Bulk removal clears one trip's links and leaves the rest alone.
	if err := repo.RemoveAllForTrip(ctx, tripID); err != nil {
		t.Fatalf("RemoveAllForTrip: %v", err)
	}
	if ps, err := repo.ListByTrip(ctx, tripID); err != nil || len(ps) != 0 {
		t.Fatalf("links survived RemoveAllForTrip: %+v, %v", ps, err)
	}
	if ps, err := repo.ListByTrip(ctx, domain.TripID(2)); err != nil || len(ps) != 1 {
		t.Fatalf("other trip's links = %+v, %v, want 1 link", ps, err)
	}
	if err := repo.RemoveAllForTrip(ctx, tripID); err != nil {
		t.Fatalf("RemoveAllForTrip with no links: %v", err)
	}
}

func RunSkillLinkRepo(t *testing.T, newRepo SkillLinkRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	warriorID := domain.WarriorID(3)
	skillID := domain.SkillID(7)

	if err := repo.Attach(ctx, domain.SkillLink{SkillID: skillID, WarriorID: warriorID, Level: 4}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	// The composite key rejects a second identical link.
	err := repo.Attach(ctx, domain.SkillLink{SkillID: skillID, WarriorID: warriorID, Level: 9})
	if !errors.Is(err, skilllinkrepoport.ErrAlreadyLinked) {
		t.Fatalf("duplicate Attach: %v, want ErrAlreadyLinked", err)
	}
	if err := repo.Attach(ctx, domain.SkillLink{SkillID: domain.SkillID(8), WarriorID: warriorID, Level: 1}); err != nil {
		t.Fatalf("Attach second skill: %v", err)
	}

	links, err := repo.ListByWarrior(ctx, warriorID)
	if err != nil {
		t.Fatalf("ListByWarrior: %v", err)
	}
	if len(links) != 2 || links[0].SkillID != skillID || links[0].Level != 4 {
		t.Fatalf("links = %+v; first attach must win and order by skill", links)
	}

	if err := repo.Detach(ctx, skillID, warriorID); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if err := repo.Detach(ctx, skillID, warriorID); !errors.Is(err, skilllinkrepoport.ErrNotFound) {
		t.Fatalf("second Detach: %v, want ErrNotFound", err)
	}

	// Bulk removal clears the warrior's remaining links and tolerates none.
	if err := repo.DetachAllForWarrior(ctx, warriorID); err != nil {
		t.Fatalf("DetachAllForWarrior: %v", err)
	}
	if ls, err := repo.ListByWarrior(ctx, warriorID); err != nil || len(ls) != 0 {
		t.Fatalf("links survived DetachAllForWarrior: %+v, %v", ls, err)
	}
	if err := repo.DetachAllForWarrior(ctx, warriorID); err != nil {
		t.Fatalf("DetachAllForWarrior with no links: %v", err)
	}
}

func RunWarriorRepo(t *testing.T, newRepo WarriorRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(1000, 0).UTC()
	owner := domain.UserID(1)

	w, err := repo.Create(ctx, domain.Warrior{Race: domain.RaceWorker, Name: "Brokk", Level: 3, OwnerID: owner, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if w.ID == 0 {
		t.Fatalf("expected store-assigned ID")
	}

	// Profession references are validated on write.
	missing := domain.ProfessionID(9999)
	_, err = repo.Create(ctx, domain.Warrior{Race: domain.RaceJunior, Name: "Sif", Level: 1, ProfessionID: &missing, OwnerID: owner, CreatedAt: now, UpdatedAt: now})
	if !errors.Is(err, warriorrepoport.ErrProfessionNotFound) {
		t.Fatalf("Create with missing profession: %v, want ErrProfessionNotFound", err)
	}

	prof, err := repo.CreateProfession(ctx, domain.Profession{Title: "Blacksmith", Description: "Forges gear"})
	if err != nil {
		t.Fatalf("CreateProfession: %v", err)
	}
	if prof.ID == 0 {
		t.Fatalf("expected store-assigned profession ID")
	}
	if got, err := repo.GetProfession(ctx, prof.ID); err != nil || got.Title != "Blacksmith" {
		t.Fatalf("GetProfession: %+v, %v", got, err)
	}

	w.Level = 5
	w.ProfessionID = &prof.ID
	w.UpdatedAt = now.Add(time.Hour)
	if err := repo.Update(ctx, w); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByID(ctx, w.ID)
	if err != nil || got.Level != 5 || got.ProfessionID == nil || *got.ProfessionID != prof.ID {
		t.Fatalf("GetByID after update: %+v, %v", got, err)
	}

	w.ProfessionID = &missing
	if err := repo.Update(ctx, w); !errors.Is(err, warriorrepoport.ErrProfessionNotFound) {
		t.Fatalf("Update with missing profession: %v, want ErrProfessionNotFound", err)
	}
	if err := repo.Update(ctx, domain.Warrior{ID: domain.WarriorID(9999), Race: domain.RaceWorker, Name: "x", Level: 1, OwnerID: owner, UpdatedAt: now}); !errors.Is(err, warriorrepoport.ErrNotFound) {
		t.Fatalf("Update missing warrior: %v, want ErrNotFound", err)
	}

	ws, err := repo.List(ctx)
	if err != nil || len(ws) != 1 || ws[0].ID != w.ID {
		t.Fatalf("List: %+v, %v", ws, err)
	}

	if err := repo.Delete(ctx, w.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, w.ID); !errors.Is(err, warriorrepoport.ErrNotFound) {
		t.Fatalf("second Delete: %v, want ErrNotFound", err)
	}
	if _, err := repo.GetProfession(ctx, missing); !errors.Is(err, warriorrepoport.ErrProfessionNotFound) {
		t.Fatalf("GetProfession missing: %v, want ErrProfessionNotFound", err)
	}
}

func RunSkillRepo(t *testing.T, newRepo SkillRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	desc := "thrown weapons"
	first, err := repo.Create(ctx, domain.Skill{Name: "axe throwing", Description: &desc})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("expected store-assigned ID")
	}
	second, err := repo.Create(ctx, domain.Skill{Name: "tracking"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil || got.Name != "axe throwing" || got.Description == nil || *got.Description != desc {
		t.Fatalf("GetByID: %+v, %v", got, err)
	}

	sks, err := repo.List(ctx)
	if err != nil || len(sks) != 2 || sks[0].ID != first.ID || sks[1].ID != second.ID {
		t.Fatalf("List: %+v, %v, want ID order", sks, err)
	}

	first.Name = "axes"
	first.Description = nil
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.GetByID(ctx, first.ID)
	if err != nil || got.Name != "axes" || got.Description != nil {
		t.Fatalf("GetByID after update: %+v, %v", got, err)
	}

	if err := repo.Update(ctx, domain.Skill{ID: domain.SkillID(9999), Name: "x"}); !errors.Is(err, skillrepoport.ErrNotFound) {
		t.Fatalf("Update missing: %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); !errors.Is(err, skillrepoport.ErrNotFound) {
		t.Fatalf("second Delete: %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, first.ID); !errors.Is(err, skillrepoport.ErrNotFound) {
		t.Fatalf("GetByID after delete: %v, want ErrNotFound", err)
	}
}
