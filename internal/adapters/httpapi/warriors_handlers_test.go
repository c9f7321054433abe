package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestWarriorSkillLinkScenario covers the attach-twice/detach-twice link
// lifecycle end to end: the second attach is a no-op and the second detach
// reports the missing link.
func TestWarriorSkillLinkScenario(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	tok := api.register(t, "alice", "wonderland")

	rec := api.do(t, http.MethodPost, "/warriors", tok, map[string]any{
		"race": "worker", "name": "Brokk", "level": 3,
	})
	assertStatus(t, rec, http.StatusCreated)
	var warrior warriorResponse
	decodeBody(t, rec, &warrior)

	rec = api.do(t, http.MethodPost, "/skills", tok, map[string]any{"name": "axe throwing"})
	assertStatus(t, rec, http.StatusCreated)
	var skill skillResponse
	decodeBody(t, rec, &skill)

	attachPath := pathf("/warriors/%d/skills/%d", warrior.ID, skill.ID)

	rec = api.do(t, http.MethodPost, attachPath, tok, map[string]any{"level": 4})
	assertStatus(t, rec, http.StatusOK)

	// Second attach: no body, no error, still one link.
	rec = api.do(t, http.MethodPost, attachPath, tok, nil)
	assertStatus(t, rec, http.StatusOK)

	rec = api.do(t, http.MethodGet, pathf("/warriors/%d", warrior.ID), "", nil)
	assertStatus(t, rec, http.StatusOK)
	var details warriorDetailsResponse
	decodeBody(t, rec, &details)
	if len(details.Skills) != 1 {
		t.Fatalf("skills = %+v, want one link", details.Skills)
	}
	if details.Skills[0].Name != "axe throwing" || details.Skills[0].Level != 4 {
		t.Fatalf("skill = %+v, want axe throwing at level 4", details.Skills[0])
	}

	rec = api.do(t, http.MethodDelete, attachPath, tok, nil)
	assertStatus(t, rec, http.StatusOK)
	rec = api.do(t, http.MethodDelete, attachPath, tok, nil)
	assertErrorCode(t, rec, http.StatusNotFound, "SKILL_LINK_NOT_FOUND")
}

func TestWarriorOwnership(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	aliceTok := api.register(t, "alice", "wonderland")
	bobTok := api.register(t, "bob", "builder123")

	rec := api.do(t, http.MethodPost, "/warriors", aliceTok, map[string]any{
		"race": "junior", "name": "Sif", "level": 1,
	})
	assertStatus(t, rec, http.StatusCreated)
	var warrior warriorResponse
	decodeBody(t, rec, &warrior)

	rec = api.do(t, http.MethodPatch, pathf("/warriors/%d", warrior.ID), bobTok, map[string]any{"level": 99})
	assertErrorCode(t, rec, http.StatusForbidden, "ACCESS_DENIED")

	rec = api.do(t, http.MethodDelete, pathf("/warriors/%d", warrior.ID), bobTok, nil)
	assertErrorCode(t, rec, http.StatusForbidden, "ACCESS_DENIED")

	// Bob cannot attach skills to alice's warrior either.
	rec = api.do(t, http.MethodPost, "/skills", bobTok, map[string]any{"name": "tracking"})
	assertStatus(t, rec, http.StatusCreated)
	var skill skillResponse
	decodeBody(t, rec, &skill)
	rec = api.do(t, http.MethodPost, pathf("/warriors/%d/skills/%d", warrior.ID, skill.ID), bobTok, nil)
	assertErrorCode(t, rec, http.StatusForbidden, "ACCESS_DENIED")

	rec = api.do(t, http.MethodPatch, pathf("/warriors/%d", warrior.ID), aliceTok, map[string]any{"level": 2})
	assertStatus(t, rec, http.StatusOK)
	var updated warriorResponse
	decodeBody(t, rec, &updated)
	if updated.Level != 2 {
		t.Fatalf("level = %d, want 2", updated.Level)
	}
}

func TestWarriorProfessionNesting(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	tok := api.register(t, "alice", "wonderland")

	rec := api.do(t, http.MethodPost, "/professions", tok, map[string]any{
		"title": "Blacksmith", "description": "Forges gear",
	})
	assertStatus(t, rec, http.StatusCreated)
	var prof professionResponse
	decodeBody(t, rec, &prof)

	rec = api.do(t, http.MethodPost, "/warriors", tok, map[string]any{
		"race": "director", "name": "Eitri", "level": 7, "profession_id": prof.ID,
	})
	assertStatus(t, rec, http.StatusCreated)
	var warrior warriorResponse
	decodeBody(t, rec, &warrior)

	rec = api.do(t, http.MethodGet, pathf("/warriors/%d", warrior.ID), "", nil)
	assertStatus(t, rec, http.StatusOK)
	var details warriorDetailsResponse
	decodeBody(t, rec, &details)
	if details.Profession == nil || details.Profession.Title != "Blacksmith" {
		t.Fatalf("profession = %+v, want Blacksmith", details.Profession)
	}

	// Null profession_id detaches it.
	rec = api.do(t, http.MethodPatch, pathf("/warriors/%d", warrior.ID), tok, map[string]any{"profession_id": nil})
	assertStatus(t, rec, http.StatusOK)
	var updated warriorResponse
	decodeBody(t, rec, &updated)
	if updated.ProfessionID != nil {
		t.Fatalf("profession_id = %v, want cleared", *updated.ProfessionID)
	}

	rec = api.do(t, http.MethodGet, "/professions", "", nil)
	assertStatus(t, rec, http.StatusOK)
	var profs []professionResponse
	decodeBody(t, rec, &profs)
	if len(profs) != 1 || profs[0].ID != prof.ID {
		t.Fatalf("professions = %+v", profs)
	}
}

func TestWarriorValidationOverHTTP(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	tok := api.register(t, "alice", "wonderland")

	rec := api.do(t, http.MethodPost, "/warriors", tok, map[string]any{
		"race": "elf", "name": "Legolas", "level": 1,
	})
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	rec = api.do(t, http.MethodGet, "/warriors/999", "", nil)
	assertErrorCode(t, rec, http.StatusNotFound, "WARRIOR_NOT_FOUND")
}

// TestAttachSkillChunkedBody sends the attach body without a Content-Length,
// the way a chunked client would; the supplied level must still be honored.
func TestAttachSkillChunkedBody(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	tok := api.register(t, "alice", "wonderland")

	rec := api.do(t, http.MethodPost, "/warriors", tok, map[string]any{
		"race": "worker", "name": "Brokk", "level": 3,
	})
	assertStatus(t, rec, http.StatusCreated)
	var warrior warriorResponse
	decodeBody(t, rec, &warrior)

	rec = api.do(t, http.MethodPost, "/skills", tok, map[string]any{"name": "smithing"})
	assertStatus(t, rec, http.StatusCreated)
	var skill skillResponse
	decodeBody(t, rec, &skill)

	// io.MultiReader hides the reader's length, so no Content-Length is set.
	body := io.MultiReader(strings.NewReader(`{"level": 6}`))
	req := httptest.NewRequest(http.MethodPost, pathf("/warriors/%d/skills/%d", warrior.ID, skill.ID), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	if req.ContentLength != -1 {
		t.Fatalf("ContentLength = %d, want -1", req.ContentLength)
	}
	rec = httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	assertStatus(t, rec, http.StatusOK)

	rec = api.do(t, http.MethodGet, pathf("/warriors/%d", warrior.ID), "", nil)
	assertStatus(t, rec, http.StatusOK)
	var details warriorDetailsResponse
	decodeBody(t, rec, &details)
	if len(details.Skills) != 1 || details.Skills[0].Level != 6 {
		t.Fatalf("skills = %+v, want one link at level 6", details.Skills)
	}
}
