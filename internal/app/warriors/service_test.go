package warriors

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/roamly/roamly-api/internal/adapters/memory/clock"
	memskilllinkrepo "github.com/roamly/roamly-api/internal/adapters/memory/skilllinkrepo"
	memskillrepo "github.com/roamly/roamly-api/internal/adapters/memory/skillrepo"
	memwarriorrepo "github.com/roamly/roamly-api/internal/adapters/memory/warriorrepo"
	"github.com/roamly/roamly-api/internal/domain"
)

const (
	owner    = domain.UserID(1)
	intruder = domain.UserID(2)
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	clk := memclock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewService(memwarriorrepo.NewRepo(), memskillrepo.NewRepo(), memskilllinkrepo.NewRepo(), clk)
}

func mustCreateWarrior(t *testing.T, svc *Service, caller domain.UserID) domain.Warrior {
	t.Helper()
	w, err := svc.CreateWarrior(context.Background(), caller, CreateWarriorInput{
		Race:  domain.RaceWorker,
		Name:  "Brokk",
		Level: 3,
	})
	if err != nil {
		t.Fatalf("CreateWarrior: %v", err)
	}
	return w
}

func mustCreateSkill(t *testing.T, svc *Service, name string) domain.Skill {
	t.Helper()
	sk, err := svc.CreateSkill(context.Background(), CreateSkillInput{Name: name})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	return sk
}

func assertAppError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want *warriors.Error", err)
	}
	if appErr.Status != status || appErr.Code != code {
		t.Fatalf("got %d/%s, want %d/%s", appErr.Status, appErr.Code, status, code)
	}
}

func TestCreateWarriorValidation(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateWarrior(ctx, owner, CreateWarriorInput{Race: "elf", Name: "Brokk", Level: 1})
	assertAppError(t, err, 400, "VALIDATION_ERROR")

	_, err = svc.CreateWarrior(ctx, owner, CreateWarriorInput{Race: domain.RaceJunior, Name: " ", Level: 1})
	assertAppError(t, err, 400, "VALIDATION_ERROR")

	_, err = svc.CreateWarrior(ctx, owner, CreateWarriorInput{Race: domain.RaceJunior, Name: "Brokk", Level: 0})
	assertAppError(t, err, 400, "VALIDATION_ERROR")

	missing := domain.ProfessionID(99)
	_, err = svc.CreateWarrior(ctx, owner, CreateWarriorInput{Race: domain.RaceJunior, Name: "Brokk", Level: 1, ProfessionID: &missing})
	assertAppError(t, err, 404, "PROFESSION_NOT_FOUND")
}

func TestUpdateWarriorOwnership(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	w := mustCreateWarrior(t, svc, owner)

	_, err := svc.UpdateWarrior(ctx, intruder, w.ID, UpdateWarriorInput{Level: Some(9)})
	assertAppError(t, err, 403, "ACCESS_DENIED")

	updated, err := svc.UpdateWarrior(ctx, owner, w.ID, UpdateWarriorInput{Level: Some(9)})
	if err != nil {
		t.Fatalf("UpdateWarrior: %v", err)
	}
	if updated.Level != 9 {
		t.Fatalf("level = %d, want 9", updated.Level)
	}
	if updated.Name != w.Name || updated.Race != w.Race {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestUpdateWarriorProfessionLifecycle(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProfession(ctx, CreateProfessionInput{Title: "Blacksmith", Description: "Forges gear"})
	if err != nil {
		t.Fatalf("CreateProfession: %v", err)
	}
	w := mustCreateWarrior(t, svc, owner)

	updated, err := svc.UpdateWarrior(ctx, owner, w.ID, UpdateWarriorInput{ProfessionID: Some(p.ID)})
	if err != nil {
		t.Fatalf("UpdateWarrior: %v", err)
	}
	if updated.ProfessionID == nil || *updated.ProfessionID != p.ID {
		t.Fatalf("professionID = %v, want %d", updated.ProfessionID, p.ID)
	}

	d, err := svc.GetWarrior(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWarrior: %v", err)
	}
	if d.Profession == nil || d.Profession.Title != "Blacksmith" {
		t.Fatalf("profession = %+v, want Blacksmith", d.Profession)
	}

	// Null detaches.
	updated, err = svc.UpdateWarrior(ctx, owner, w.ID, UpdateWarriorInput{ProfessionID: Null[domain.ProfessionID]()})
	if err != nil {
		t.Fatalf("UpdateWarrior: %v", err)
	}
	if updated.ProfessionID != nil {
		t.Fatalf("professionID = %v, want nil", updated.ProfessionID)
	}
}

func TestDeleteWarriorOwnership(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	w := mustCreateWarrior(t, svc, owner)

	err := svc.DeleteWarrior(ctx, intruder, w.ID)
	assertAppError(t, err, 403, "ACCESS_DENIED")

	if err := svc.DeleteWarrior(ctx, owner, w.ID); err != nil {
		t.Fatalf("DeleteWarrior: %v", err)
	}
	err = svc.DeleteWarrior(ctx, owner, w.ID)
	assertAppError(t, err, 404, "WARRIOR_NOT_FOUND")
}

func TestAttachDetachSkillLifecycle(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	w := mustCreateWarrior(t, svc, owner)
	sk := mustCreateSkill(t, svc, "axe throwing")

	// Attach twice: the second call is a no-op, exactly one link persists.
	lvl := 4
	if err := svc.AttachSkill(ctx, owner, w.ID, sk.ID, &lvl); err != nil {
		t.Fatalf("AttachSkill: %v", err)
	}
	if err := svc.AttachSkill(ctx, owner, w.ID, sk.ID, nil); err != nil {
		t.Fatalf("second AttachSkill: %v", err)
	}

	d, err := svc.GetWarrior(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWarrior: %v", err)
	}
	if len(d.Skills) != 1 {
		t.Fatalf("len(skills) = %d, want 1", len(d.Skills))
	}
	if d.Skills[0].Name != "axe throwing" || d.Skills[0].Level != 4 {
		t.Fatalf("skill = %+v, want axe throwing at level 4", d.Skills[0])
	}

	// Detach twice: the second call reports the missing link.
	if err := svc.DetachSkill(ctx, owner, w.ID, sk.ID); err != nil {
		t.Fatalf("DetachSkill: %v", err)
	}
	err = svc.DetachSkill(ctx, owner, w.ID, sk.ID)
	assertAppError(t, err, 404, "SKILL_LINK_NOT_FOUND")
}

func TestAttachSkillChecks(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	w := mustCreateWarrior(t, svc, owner)
	sk := mustCreateSkill(t, svc, "tracking")

	err := svc.AttachSkill(ctx, intruder, w.ID, sk.ID, nil)
	assertAppError(t, err, 403, "ACCESS_DENIED")

	err = svc.AttachSkill(ctx, owner, domain.WarriorID(999), sk.ID, nil)
	assertAppError(t, err, 404, "WARRIOR_NOT_FOUND")

	err = svc.AttachSkill(ctx, owner, w.ID, domain.SkillID(999), nil)
	assertAppError(t, err, 404, "SKILL_NOT_FOUND")

	bad := 0
	err = svc.AttachSkill(ctx, owner, w.ID, sk.ID, &bad)
	assertAppError(t, err, 400, "VALIDATION_ERROR")
}

func TestSkillCRUD(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	sk := mustCreateSkill(t, svc, "navigation")

	got, err := svc.GetSkill(ctx, sk.ID)
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}
	if got.Name != "navigation" {
		t.Fatalf("name = %q", got.Name)
	}

	desc := "celestial and map"
	updated, err := svc.UpdateSkill(ctx, sk.ID, UpdateSkillInput{Description: Some(desc)})
	if err != nil {
		t.Fatalf("UpdateSkill: %v", err)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Fatalf("description = %v", updated.Description)
	}
	if updated.Name != "navigation" {
		t.Fatalf("name changed: %q", updated.Name)
	}

	_, err = svc.UpdateSkill(ctx, sk.ID, UpdateSkillInput{Name: Null[string]()})
	assertAppError(t, err, 400, "VALIDATION_ERROR")

	if err := svc.DeleteSkill(ctx, sk.ID); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}
	err = svc.DeleteSkill(ctx, sk.ID)
	assertAppError(t, err, 404, "SKILL_NOT_FOUND")
}

func TestDeleteWarriorRemovesSkillLinks(t *testing.T) {
	t.Parallel()
	clk := memclock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	links := memskilllinkrepo.NewRepo()
	svc := NewService(memwarriorrepo.NewRepo(), memskillrepo.NewRepo(), links, clk)
	ctx := context.Background()

	w := mustCreateWarrior(t, svc, owner)
	sk := mustCreateSkill(t, svc, "smithing")
	if err := svc.AttachSkill(ctx, owner, w.ID, sk.ID, nil); err != nil {
		t.Fatalf("AttachSkill: %v", err)
	}
	if err := svc.DeleteWarrior(ctx, owner, w.ID); err != nil {
		t.Fatalf("DeleteWarrior: %v", err)
	}
	ls, err := links.ListByWarrior(ctx, w.ID)
	if err != nil || len(ls) != 0 {
		t.Fatalf("links after warrior delete = %+v, %v, want none", ls, err)
	}
}
