package warriorrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/roamly/roamly-api/internal/adapters/postgres"
	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/warriorrepo"
)

// Repo is a Postgres implementation of warriorrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const warriorColumns = `
	id, race, name, level, profession_id, owner_id, created_at, updated_at
`

func (r *Repo) Create(ctx context.Context, w domain.Warrior) (domain.Warrior, error) {
	if r.pool == nil {
		return domain.Warrior{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO warriors (race, name, level, profession_id, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		string(w.Race),
		w.Name,
		w.Level,
		professionArg(w.ProfessionID),
		int64(w.OwnerID),
		w.CreatedAt.UTC(),
		w.UpdatedAt.UTC(),
	)
	var id int64
	if err := row.Scan(&id); err != nil {
		if postgres.IsForeignKeyViolation(err, "warriors_profession_id_fkey") {
			return domain.Warrior{}, warriorrepo.ErrProfessionNotFound
		}
		return domain.Warrior{}, err
	}
	w.ID = domain.WarriorID(id)
	return w, nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.WarriorID) (domain.Warrior, error) {
	if r.pool == nil {
		return domain.Warrior{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+warriorColumns+` FROM warriors WHERE id = $1`, int64(id))
	w, err := scanWarrior(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Warrior{}, warriorrepo.ErrNotFound
		}
		return domain.Warrior{}, err
	}
	return w, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Warrior, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT `+warriorColumns+` FROM warriors ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Warrior, 0)
	for rows.Next() {
		w, err := scanWarrior(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, w domain.Warrior) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE warriors
		SET race = $2,
		    name = $3,
		    level = $4,
		    profession_id = $5,
		    updated_at = $6
		WHERE id = $1
	`,
		int64(w.ID),
		string(w.Race),
		w.Name,
		w.Level,
		professionArg(w.ProfessionID),
		w.UpdatedAt.UTC(),
	)
	if err != nil {
		if postgres.IsForeignKeyViolation(err, "warriors_profession_id_fkey") {
			return warriorrepo.ErrProfessionNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return warriorrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.WarriorID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM warriors WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return warriorrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) CreateProfession(ctx context.Context, p domain.Profession) (domain.Profession, error) {
	if r.pool == nil {
		return domain.Profession{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO professions (title, description)
		VALUES ($1, $2)
		RETURNING id
	`, p.Title, p.Description)
	var id int64
	if err := row.Scan(&id); err != nil {
		return domain.Profession{}, err
	}
	p.ID = domain.ProfessionID(id)
	return p, nil
}

func (r *Repo) GetProfession(ctx context.Context, id domain.ProfessionID) (domain.Profession, error) {
	if r.pool == nil {
		return domain.Profession{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description FROM professions WHERE id = $1
	`, int64(id))

	var p domain.Profession
	var pid int64
	if err := row.Scan(&pid, &p.Title, &p.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profession{}, warriorrepo.ErrProfessionNotFound
		}
		return domain.Profession{}, err
	}
	p.ID = domain.ProfessionID(pid)
	return p, nil
}

func (r *Repo) ListProfessions(ctx context.Context) ([]domain.Profession, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT id, title, description FROM professions ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Profession, 0)
	for rows.Next() {
		var p domain.Profession
		var pid int64
		if err := rows.Scan(&pid, &p.Title, &p.Description); err != nil {
			return nil, err
		}
		p.ID = domain.ProfessionID(pid)
		out = append(out, p)
	}
	return out, rows.Err()
}

// --- helpers ---

func scanWarrior(row pgx.Row) (domain.Warrior, error) {
	var w domain.Warrior
	var id, ownerID int64
	var race string
	var professionID *int64
	if err := row.Scan(
		&id,
		&race,
		&w.Name,
		&w.Level,
		&professionID,
		&ownerID,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return domain.Warrior{}, err
	}
	w.ID = domain.WarriorID(id)
	w.Race = domain.Race(race)
	w.OwnerID = domain.UserID(ownerID)
	if professionID != nil {
		v := domain.ProfessionID(*professionID)
		w.ProfessionID = &v
	}
	w.CreatedAt = w.CreatedAt.UTC()
	w.UpdatedAt = w.UpdatedAt.UTC()
	return w, nil
}

func professionArg(id *domain.ProfessionID) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}
