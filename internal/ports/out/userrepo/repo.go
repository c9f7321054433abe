package userrepo

import (
	"context"
	"time"

	"github.com/roamly/roamly-api/internal/domain"
)

// User is the persistence shape used by the user repository. Unlike
// domain.User it carries the password digest; it is an internal record, not
// an HTTP DTO, and must never be serialized to a caller.
type User struct {
	ID       domain.UserID
	Username string

	// PasswordDigest is the one-way hash stored instead of the plaintext.
	PasswordDigest string

	FullName    *string
	Bio         *string
	Preferences *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository provides access to persisted users.
type Repository interface {
	// Create persists u with a store-assigned ID and returns the stored record.
	// ErrUsernameTaken is returned when the username is already bound.
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id domain.UserID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
