// Package testutil provides helpers for postgres adapter tests. The suite is
// opt-in: tests skip unless ROAMLY_TEST_DATABASE_URL points at a disposable
// database.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/roamly/roamly-api/internal/adapters/postgres"
)

const envDatabaseURL = "ROAMLY_TEST_DATABASE_URL"

// OpenMigratedPool connects to the test database, applies migrations, and
// empties every table so the test binary starts from a clean slate.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(envDatabaseURL)
	if url == "" {
		t.Skipf("%s not set; skipping postgres tests", envDatabaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, url, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := postgres.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	TruncateAll(t, pool)
	return pool
}

// TruncateAll empties every application table and resets identity sequences.
func TruncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		TRUNCATE skill_warrior_links, skills, warriors, professions,
			messages, itinerary_items, trip_participants, trips, users
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// Seed helpers insert parent rows with explicit IDs so the repository
// contract suites can reference them through foreign keys.

func SeedUser(t *testing.T, pool *pgxpool.Pool, id int64, username string) {
	t.Helper()
	seed(t, pool, `
		INSERT INTO users (id, username, password_digest, created_at, updated_at)
		VALUES ($1, $2, 'digest', now(), now())
	`, id, username)
}

func SeedTrip(t *testing.T, pool *pgxpool.Pool, id, ownerID int64) {
	t.Helper()
	seed(t, pool, `
		INSERT INTO trips (id, title, origin, destination, owner_id, created_at, updated_at)
		VALUES ($1, 'Coastal loop', 'Lisbon', 'Porto', $2, now(), now())
	`, id, ownerID)
}

func SeedWarrior(t *testing.T, pool *pgxpool.Pool, id, ownerID int64) {
	t.Helper()
	seed(t, pool, `
		INSERT INTO warriors (id, race, name, level, owner_id, created_at, updated_at)
		VALUES ($1, 'worker', 'Brokk', 1, $2, now(), now())
	`, id, ownerID)
}

func SeedSkill(t *testing.T, pool *pgxpool.Pool, id int64, name string) {
	t.Helper()
	seed(t, pool, `INSERT INTO skills (id, name) VALUES ($1, $2)`, id, name)
}

func seed(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("seed: %v", err)
	}
}
