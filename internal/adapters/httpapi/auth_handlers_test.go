package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestRegisterNeverEchoesDigest(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/register", "", map[string]any{
		"username": "alice", "password": "wonderland", "full_name": "Alice Wanderer",
	})
	assertStatus(t, rec, http.StatusCreated)

	body := rec.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "digest") {
		t.Fatalf("response leaks credential material: %s", body)
	}
	var u userResponse
	decodeBody(t, rec, &u)
	if u.Username != "alice" || u.FullName == nil || *u.FullName != "Alice Wanderer" {
		t.Fatalf("user = %+v", u)
	}
}

func TestRegisterDuplicateUsernameOverHTTP(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	_ = api.register(t, "alice", "wonderland")
	rec := api.do(t, http.MethodPost, "/register", "", map[string]any{
		"username": "alice", "password": "different1",
	})
	assertErrorCode(t, rec, http.StatusBadRequest, "USERNAME_TAKEN")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)
	_ = api.register(t, "alice", "wonderland")

	form := url.Values{"username": {"alice"}, "password": {"not-it"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	assertErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestLoginRequiresBothFields(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	form := url.Values{"username": {"alice"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}
