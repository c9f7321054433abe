package participantrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/roamly/roamly-api/internal/adapters/postgres"
	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/participantrepo"
)

// Repo is a Postgres implementation of participantrepo.Repository. The
// composite primary key on trip_participants is the authoritative
// de-duplication mechanism: a duplicate insert surfaces as ErrAlreadyJoined.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Add(ctx context.Context, p domain.Participant) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO trip_participants (trip_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, int64(p.TripID), int64(p.UserID), p.JoinedAt.UTC())
	if err != nil {
		if postgres.IsUniqueViolation(err, "trip_participants_pkey") {
			return participantrepo.ErrAlreadyJoined
		}
		return err
	}
	return nil
}

func (r *Repo) Remove(ctx context.Context, tripID domain.TripID, userID domain.UserID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM trip_participants
		WHERE trip_id = $1 AND user_id = $2
	`, int64(tripID), int64(userID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return participantrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) RemoveAllForTrip(ctx context.Context, tripID domain.TripID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM trip_participants
		WHERE trip_id = $1
	`, int64(tripID))
	return err
}

func (r *Repo) ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Participant, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT trip_id, user_id, joined_at
		FROM trip_participants
		WHERE trip_id = $1
		ORDER BY joined_at ASC, user_id ASC
	`, int64(tripID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Participant, 0)
	for rows.Next() {
		var p domain.Participant
		var tid, uid int64
		if err := rows.Scan(&tid, &uid, &p.JoinedAt); err != nil {
			return nil, err
		}
		p.TripID = domain.TripID(tid)
		p.UserID = domain.UserID(uid)
		p.JoinedAt = p.JoinedAt.UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}
