package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/roamly/roamly-api/internal/adapters/postgres"
	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/userrepo"
)

// Repo is a Postgres implementation of userrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, u userrepo.User) (userrepo.User, error) {
	if r.pool == nil {
		return userrepo.User{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_digest, full_name, bio, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		u.Username,
		u.PasswordDigest,
		u.FullName,
		u.Bio,
		u.Preferences,
		u.CreatedAt.UTC(),
		u.UpdatedAt.UTC(),
	)
	var id int64
	if err := row.Scan(&id); err != nil {
		if postgres.IsUniqueViolation(err, "users_username_unique") {
			return userrepo.User{}, userrepo.ErrUsernameTaken
		}
		return userrepo.User{}, err
	}
	u.ID = domain.UserID(id)
	return u, nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (userrepo.User, error) {
	if r.pool == nil {
		return userrepo.User{}, errors.New("nil postgres pool")
	}
	return r.get(ctx, `WHERE id = $1`, int64(id))
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (userrepo.User, error) {
	if r.pool == nil {
		return userrepo.User{}, errors.New("nil postgres pool")
	}
	return r.get(ctx, `WHERE lower(username) = lower($1)`, username)
}

func (r *Repo) get(ctx context.Context, where string, arg any) (userrepo.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, password_digest, full_name, bio, preferences, created_at, updated_at
		FROM users
	`+where, arg)

	var u userrepo.User
	var id int64
	if err := row.Scan(
		&id,
		&u.Username,
		&u.PasswordDigest,
		&u.FullName,
		&u.Bio,
		&u.Preferences,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return userrepo.User{}, userrepo.ErrNotFound
		}
		return userrepo.User{}, err
	}
	u.ID = domain.UserID(id)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}
