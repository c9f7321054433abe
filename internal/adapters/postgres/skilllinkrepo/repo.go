package skilllinkrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/roamly/roamly-api/internal/adapters/postgres"
	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/skilllinkrepo"
)

// Repo is a Postgres implementation of skilllinkrepo.Repository. The
// composite primary key on skill_warrior_links translates a duplicate
// attach into ErrAlreadyLinked.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Attach(ctx context.Context, l domain.SkillLink) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO skill_warrior_links (skill_id, warrior_id, level)
		VALUES ($1, $2, $3)
	`, int64(l.SkillID), int64(l.WarriorID), l.Level)
	if err != nil {
		if postgres.IsUniqueViolation(err, "skill_warrior_links_pkey") {
			return skilllinkrepo.ErrAlreadyLinked
		}
		return err
	}
	return nil
}

func (r *Repo) Detach(ctx context.Context, skillID domain.SkillID, warriorID domain.WarriorID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM skill_warrior_links
		WHERE skill_id = $1 AND warrior_id = $2
	`, int64(skillID), int64(warriorID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return skilllinkrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) DetachAllForWarrior(ctx context.Context, warriorID domain.WarriorID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM skill_warrior_links
		WHERE warrior_id = $1
	`, int64(warriorID))
	return err
}

func (r *Repo) ListByWarrior(ctx context.Context, warriorID domain.WarriorID) ([]domain.SkillLink, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT skill_id, warrior_id, level
		FROM skill_warrior_links
		WHERE warrior_id = $1
		ORDER BY skill_id ASC
	`, int64(warriorID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.SkillLink, 0)
	for rows.Next() {
		var l domain.SkillLink
		var sid, wid int64
		if err := rows.Scan(&sid, &wid, &l.Level); err != nil {
			return nil, err
		}
		l.SkillID = domain.SkillID(sid)
		l.WarriorID = domain.WarriorID(wid)
		out = append(out, l)
	}
	return out, rows.Err()
}
