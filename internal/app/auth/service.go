package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/platform/passhash"
	"github.com/roamly/roamly-api/internal/platform/token"
	clockport "github.com/roamly/roamly-api/internal/ports/out/clock"
	"github.com/roamly/roamly-api/internal/ports/out/userrepo"
)

const minPasswordLength = 6

type RegisterInput struct {
	Username string
	Password string

	FullName    *string
	Bio         *string
	Preferences *string
}

// LoginResult carries the minted token plus the authenticated user so
// handlers can log who signed in without a second lookup.
type LoginResult struct {
	AccessToken string
	User        domain.User
}

type Service struct {
	users  userrepo.Repository
	tokens *token.Issuer
	clk    clockport.Clock
}

func NewService(users userrepo.Repository, tokens *token.Issuer, clk clockport.Clock) *Service {
	return &Service{users: users, tokens: tokens, clk: clk}
}

// Register creates a new user. The plaintext password is digested before it
// reaches the repository and is never stored or returned.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return domain.User{}, &Error{Status: 400, Code: "VALIDATION_ERROR", Message: "invalid username", Details: map[string]any{"username": "must be non-empty"}}
	}
	if len(in.Password) < minPasswordLength {
		return domain.User{}, &Error{Status: 400, Code: "VALIDATION_ERROR", Message: "invalid password", Details: map[string]any{"password": "must be at least 6 characters"}}
	}

	now := s.clk.Now().UTC()
	rec := userrepo.User{
		Username:       username,
		PasswordDigest: passhash.Hash(in.Password),
		FullName:       normalizePtr(in.FullName),
		Bio:            in.Bio,
		Preferences:    in.Preferences,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	stored, err := s.users.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, userrepo.ErrUsernameTaken) {
			return domain.User{}, &Error{Status: 400, Code: "USERNAME_TAKEN", Message: "username already registered"}
		}
		return domain.User{}, err
	}
	return toDomain(stored), nil
}

// Login verifies credentials and mints an access token. Unknown usernames and
// wrong passwords collapse into the same error so callers cannot probe for
// registered accounts.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	invalid := &Error{Status: 401, Code: "INVALID_CREDENTIALS", Message: "incorrect username or password"}

	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return LoginResult{}, invalid
		}
		return LoginResult{}, err
	}
	if !passhash.Verify(password, u.PasswordDigest) {
		return LoginResult{}, invalid
	}

	tok, err := s.tokens.Issue(u.ID)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{AccessToken: tok, User: toDomain(u)}, nil
}

// Resolve verifies a bearer token and loads its user. A structurally valid
// token whose user no longer exists is reported as a missing user, distinct
// from the token being invalid or expired.
func (s *Service) Resolve(ctx context.Context, tokenString string) (domain.User, error) {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return domain.User{}, &Error{Status: 401, Code: "TOKEN_EXPIRED", Message: "token expired"}
		}
		return domain.User{}, &Error{Status: 401, Code: "INVALID_TOKEN", Message: "could not validate credentials"}
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, &Error{Status: 404, Code: "USER_NOT_FOUND", Message: "user not found"}
		}
		return domain.User{}, err
	}
	return toDomain(u), nil
}

// GetUser loads a user's public profile by ID.
func (s *Service) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, &Error{Status: 404, Code: "USER_NOT_FOUND", Message: "user not found"}
		}
		return domain.User{}, err
	}
	return toDomain(u), nil
}

func toDomain(u userrepo.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Bio:         u.Bio,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func normalizePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := domain.NormalizeHumanName(*p)
	return &v
}
