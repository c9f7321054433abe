package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/roamly/roamly-api/internal/adapters/memory/clock"
	memuserrepo "github.com/roamly/roamly-api/internal/adapters/memory/userrepo"
	"github.com/roamly/roamly-api/internal/platform/token"
)

func newTestService(t *testing.T) (*Service, *memclock.ManualClock) {
	t.Helper()
	clk := memclock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	issuer := token.NewIssuerWithNow([]byte("test-secret"), time.Hour, clk.Now)
	return NewService(memuserrepo.NewRepo(), issuer, clk), clk
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	full := "Alice Wanderer"
	u, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "wonderland", FullName: &full})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned user ID")
	}
	if u.Username != "alice" {
		t.Fatalf("username = %q, want alice", u.Username)
	}

	res, err := svc.Login(ctx, "alice", "wonderland")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatalf("expected non-empty access token")
	}
	if res.User.ID != u.ID {
		t.Fatalf("login user = %d, want %d", res.User.ID, u.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"empty username", RegisterInput{Username: "   ", Password: "longenough"}},
		{"short password", RegisterInput{Username: "bob", Password: "tiny"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.in)
			var appErr *Error
			if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("err = %v, want VALIDATION_ERROR", err)
			}
			if appErr.Status != 400 {
				t.Fatalf("status = %d, want 400", appErr.Status)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "wonderland"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(ctx, RegisterInput{Username: "Alice", Password: "different1"})
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Code != "USERNAME_TAKEN" {
		t.Fatalf("err = %v, want USERNAME_TAKEN", err)
	}
	if appErr.Status != 400 {
		t.Fatalf("status = %d, want 400", appErr.Status)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "wonderland"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, tc := range []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "not-it"},
		{"unknown username", "mallory", "wonderland"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tc.username, tc.password)
			var appErr *Error
			if !errors.As(err, &appErr) || appErr.Code != "INVALID_CREDENTIALS" {
				t.Fatalf("err = %v, want INVALID_CREDENTIALS", err)
			}
			if appErr.Status != 401 {
				t.Fatalf("status = %d, want 401", appErr.Status)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	svc, clk := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "wonderland"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	res, err := svc.Login(ctx, "alice", "wonderland")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	got, err := svc.Resolve(ctx, res.AccessToken)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("resolved user = %d, want %d", got.ID, u.ID)
	}

	// Garbage token.
	_, err = svc.Resolve(ctx, "not-a-token")
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Code != "INVALID_TOKEN" {
		t.Fatalf("err = %v, want INVALID_TOKEN", err)
	}

	// Same token after expiry.
	clk.Advance(2 * time.Hour)
	_, err = svc.Resolve(ctx, res.AccessToken)
	if !errors.As(err, &appErr) || appErr.Code != "TOKEN_EXPIRED" {
		t.Fatalf("err = %v, want TOKEN_EXPIRED", err)
	}
}

func TestResolveMissingUser(t *testing.T) {
	t.Parallel()
	clk := memclock.NewManualClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	issuer := token.NewIssuerWithNow([]byte("test-secret"), time.Hour, clk.Now)
	svc := NewService(memuserrepo.NewRepo(), issuer, clk)

	// Token for a user that was never created.
	tok, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	_, err = svc.Resolve(context.Background(), tok)
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Code != "USER_NOT_FOUND" {
		t.Fatalf("err = %v, want USER_NOT_FOUND", err)
	}
	if appErr.Status != 404 {
		t.Fatalf("status = %d, want 404", appErr.Status)
	}
}
