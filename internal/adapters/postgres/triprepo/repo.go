package triprepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/roamly/roamly-api/internal/adapters/postgres"
	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/triprepo"
)

// Repo is a Postgres implementation of triprepo.Repository. Dependent rows
// (itinerary items, messages, participant links) are removed by the schema's
// ON DELETE CASCADE when a trip goes away.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tripColumns = `
	id, title, description, start_date, end_date, origin, destination,
	duration_days, owner_id, created_at, updated_at
`

func (r *Repo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	if r.pool == nil {
		return domain.Trip{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO trips (
			title, description, start_date, end_date, origin, destination,
			duration_days, owner_id, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		t.Title,
		t.Description,
		datePtr(t.StartDate),
		datePtr(t.EndDate),
		t.Origin,
		t.Destination,
		t.DurationDays,
		int64(t.OwnerID),
		t.CreatedAt.UTC(),
		t.UpdatedAt.UTC(),
	)
	var id int64
	if err := row.Scan(&id); err != nil {
		return domain.Trip{}, err
	}
	t.ID = domain.TripID(id)
	return t, nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	if r.pool == nil {
		return domain.Trip{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, int64(id))
	t, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, triprepo.ErrNotFound
		}
		return domain.Trip{}, err
	}
	return t, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Trip, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT `+tripColumns+` FROM trips ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, t domain.Trip) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE trips
		SET title = $2,
		    description = $3,
		    start_date = $4,
		    end_date = $5,
		    origin = $6,
		    destination = $7,
		    duration_days = $8,
		    updated_at = $9
		WHERE id = $1
	`,
		int64(t.ID),
		t.Title,
		t.Description,
		datePtr(t.StartDate),
		datePtr(t.EndDate),
		t.Origin,
		t.Destination,
		t.DurationDays,
		t.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return triprepo.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.TripID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return triprepo.ErrNotFound
	}
	return nil
}

func (r *Repo) CreateItineraryItem(ctx context.Context, it domain.ItineraryItem) (domain.ItineraryItem, error) {
	if r.pool == nil {
		return domain.ItineraryItem{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO itinerary_items (trip_id, day_number, location, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, int64(it.TripID), it.DayNumber, it.Location, it.Description)
	var id int64
	if err := row.Scan(&id); err != nil {
		if isTripFKViolation(err) {
			return domain.ItineraryItem{}, triprepo.ErrNotFound
		}
		return domain.ItineraryItem{}, err
	}
	it.ID = domain.ItineraryItemID(id)
	return it, nil
}

func (r *Repo) GetItineraryItem(ctx context.Context, id domain.ItineraryItemID) (domain.ItineraryItem, error) {
	if r.pool == nil {
		return domain.ItineraryItem{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, trip_id, day_number, location, description
		FROM itinerary_items
		WHERE id = $1
	`, int64(id))

	var it domain.ItineraryItem
	var itemID, tripID int64
	if err := row.Scan(&itemID, &tripID, &it.DayNumber, &it.Location, &it.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ItineraryItem{}, triprepo.ErrItemNotFound
		}
		return domain.ItineraryItem{}, err
	}
	it.ID = domain.ItineraryItemID(itemID)
	it.TripID = domain.TripID(tripID)
	return it, nil
}

func (r *Repo) ListItinerary(ctx context.Context, tripID domain.TripID) ([]domain.ItineraryItem, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, trip_id, day_number, location, description
		FROM itinerary_items
		WHERE trip_id = $1
		ORDER BY day_number ASC, id ASC
	`, int64(tripID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ItineraryItem, 0)
	for rows.Next() {
		var it domain.ItineraryItem
		var itemID, tid int64
		if err := rows.Scan(&itemID, &tid, &it.DayNumber, &it.Location, &it.Description); err != nil {
			return nil, err
		}
		it.ID = domain.ItineraryItemID(itemID)
		it.TripID = domain.TripID(tid)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) DeleteItineraryItem(ctx context.Context, id domain.ItineraryItemID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM itinerary_items WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return triprepo.ErrItemNotFound
	}
	return nil
}

func (r *Repo) CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	if r.pool == nil {
		return domain.Message{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO messages (trip_id, sender_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, int64(m.TripID), int64(m.SenderID), m.Content, m.CreatedAt.UTC())
	var id int64
	if err := row.Scan(&id); err != nil {
		if isTripFKViolation(err) {
			return domain.Message{}, triprepo.ErrNotFound
		}
		return domain.Message{}, err
	}
	m.ID = domain.MessageID(id)
	return m, nil
}

func (r *Repo) ListMessages(ctx context.Context, tripID domain.TripID) ([]domain.Message, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, trip_id, sender_id, content, created_at
		FROM messages
		WHERE trip_id = $1
		ORDER BY created_at ASC, id ASC
	`, int64(tripID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Message, 0)
	for rows.Next() {
		var m domain.Message
		var msgID, tid, senderID int64
		if err := rows.Scan(&msgID, &tid, &senderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.ID = domain.MessageID(msgID)
		m.TripID = domain.TripID(tid)
		m.SenderID = domain.UserID(senderID)
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

// --- helpers ---

func scanTrip(row pgx.Row) (domain.Trip, error) {
	var t domain.Trip
	var id, ownerID int64
	var startDate, endDate pgtype.Date
	if err := row.Scan(
		&id,
		&t.Title,
		&t.Description,
		&startDate,
		&endDate,
		&t.Origin,
		&t.Destination,
		&t.DurationDays,
		&ownerID,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return domain.Trip{}, err
	}
	t.ID = domain.TripID(id)
	t.OwnerID = domain.UserID(ownerID)
	t.StartDate = dateToTimePtr(startDate)
	t.EndDate = dateToTimePtr(endDate)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func isTripFKViolation(err error) bool {
	return postgres.IsForeignKeyViolation(err, "itinerary_items_trip_id_fkey") ||
		postgres.IsForeignKeyViolation(err, "messages_trip_id_fkey")
}

func datePtr(t *time.Time) pgtype.Date {
	var d pgtype.Date
	if t == nil {
		d.Valid = false
		return d
	}
	tt := t.UTC()
	d.Time = time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
	d.Valid = true
	return d
}

func dateToTimePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
	return &t
}
