package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	memclock "github.com/roamly/roamly-api/internal/adapters/memory/clock"
	memparticipantrepo "github.com/roamly/roamly-api/internal/adapters/memory/participantrepo"
	memskilllinkrepo "github.com/roamly/roamly-api/internal/adapters/memory/skilllinkrepo"
	memskillrepo "github.com/roamly/roamly-api/internal/adapters/memory/skillrepo"
	memtriprepo "github.com/roamly/roamly-api/internal/adapters/memory/triprepo"
	memuserrepo "github.com/roamly/roamly-api/internal/adapters/memory/userrepo"
	memwarriorrepo "github.com/roamly/roamly-api/internal/adapters/memory/warriorrepo"
	"github.com/roamly/roamly-api/internal/app/auth"
	"github.com/roamly/roamly-api/internal/app/trips"
	"github.com/roamly/roamly-api/internal/app/warriors"
	"github.com/roamly/roamly-api/internal/platform/token"
)

type testAPI struct {
	handler http.Handler
	clk     *memclock.ManualClock
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	issuer := token.NewIssuerWithNow([]byte("test-secret"), time.Hour, clk.Now)

	authSvc := auth.NewService(memuserrepo.NewRepo(), issuer, clk)
	tripsSvc := trips.NewService(memtriprepo.NewRepo(), memparticipantrepo.NewRepo(), clk)
	warriorsSvc := warriors.NewService(memwarriorrepo.NewRepo(), memskillrepo.NewRepo(), memskilllinkrepo.NewRepo(), clk)

	log := logrus.New()
	log.SetOutput(io.Discard)

	srv := NewServer(authSvc, tripsSvc, warriorsSvc, log)
	return &testAPI{handler: NewRouter(srv, nil), clk: clk}
}

// do issues a JSON request; a non-empty bearer adds the Authorization header.
func (a *testAPI) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// register creates a user and returns a bearer token for it.
func (a *testAPI) register(t *testing.T, username, password string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/register", "", map[string]any{
		"username": username,
		"password": password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", username, rec.Code, rec.Body.String())
	}

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", username, rec.Code, rec.Body.String())
	}

	var tok tokenResponse
	decodeBody(t, rec, &tok)
	if tok.TokenType != "bearer" || tok.AccessToken == "" {
		t.Fatalf("unexpected token response: %+v", tok)
	}
	return tok.AccessToken
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assertStatus(t, rec, status)
	var er struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, rec, &er)
	if er.Error.Code != code {
		t.Fatalf("error code = %q, want %q; body: %s", er.Error.Code, code, rec.Body.String())
	}
}

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
