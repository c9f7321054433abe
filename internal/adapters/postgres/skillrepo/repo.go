package skillrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/skillrepo"
)

// Repo is a Postgres implementation of skillrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, s domain.Skill) (domain.Skill, error) {
	if r.pool == nil {
		return domain.Skill{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO skills (name, description)
		VALUES ($1, $2)
		RETURNING id
	`, s.Name, s.Description)
	var id int64
	if err := row.Scan(&id); err != nil {
		return domain.Skill{}, err
	}
	s.ID = domain.SkillID(id)
	return s, nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.SkillID) (domain.Skill, error) {
	if r.pool == nil {
		return domain.Skill{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT id, name, description FROM skills WHERE id = $1`, int64(id))

	var s domain.Skill
	var sid int64
	if err := row.Scan(&sid, &s.Name, &s.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Skill{}, skillrepo.ErrNotFound
		}
		return domain.Skill{}, err
	}
	s.ID = domain.SkillID(sid)
	return s, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Skill, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM skills ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Skill, 0)
	for rows.Next() {
		var s domain.Skill
		var sid int64
		if err := rows.Scan(&sid, &s.Name, &s.Description); err != nil {
			return nil, err
		}
		s.ID = domain.SkillID(sid)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, s domain.Skill) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE skills
		SET name = $2,
		    description = $3
		WHERE id = $1
	`, int64(s.ID), s.Name, s.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return skillrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.SkillID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return skillrepo.ErrNotFound
	}
	return nil
}
