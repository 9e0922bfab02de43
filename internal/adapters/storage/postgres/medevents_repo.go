package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"petcare/internal/domain/medevents"
	"petcare/internal/platform/dates"
)

type MedEventsRepo struct {
	db *sql.DB
}

func NewMedEventsRepo(db *sql.DB) *MedEventsRepo {
	return &MedEventsRepo{db: db}
}

func (r *MedEventsRepo) CreateCategory(ctx context.Context, c medevents.Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_event_categories (id, animal_id, category_name, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		c.ID,
		c.AnimalID,
		c.CategoryName,
		c.CreatedAt,
	)
	return err
}

func (r *MedEventsRepo) GetCategoryByID(ctx context.Context, id string) (medevents.Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, animal_id, category_name, created_at
		FROM medical_event_categories
		WHERE id = $1
	`, id)

	var c medevents.Category
	if err := row.Scan(&c.ID, &c.AnimalID, &c.CategoryName, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medevents.Category{}, medevents.ErrNotFound
		}
		return medevents.Category{}, err
	}
	return c, nil
}

func (r *MedEventsRepo) ListCategoriesByAnimal(ctx context.Context, animalID string) ([]medevents.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, category_name, created_at
		FROM medical_event_categories
		WHERE animal_id = $1
		ORDER BY created_at ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medevents.Category, 0)
	for rows.Next() {
		var c medevents.Category
		if err := rows.Scan(&c.ID, &c.AnimalID, &c.CategoryName, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *MedEventsRepo) DeleteCategoriesByAnimal(ctx context.Context, animalID string) error {
	// Los eventos caen primero; sin FK con cascade para mantener el schema simple.
	if _, err := r.db.ExecContext(ctx, `
		DELETE FROM medical_events
		WHERE category_id IN (
			SELECT id FROM medical_event_categories WHERE animal_id = $1
		)
	`, animalID); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		DELETE FROM medical_event_categories WHERE animal_id = $1
	`, animalID)
	return err
}

func (r *MedEventsRepo) CreateEvent(ctx context.Context, e medevents.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_events (
			id, category_id, event_name, date, next_date, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID,
		e.CategoryID,
		e.EventName,
		e.Date.Time,
		toNullDate(e.NextDate),
		e.Notes,
		e.CreatedAt,
	)
	return err
}

func (r *MedEventsRepo) GetEventByID(ctx context.Context, id string) (medevents.Event, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, category_id, event_name, date, next_date, notes, created_at
		FROM medical_events
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medevents.Event{}, medevents.ErrNotFound
		}
		return medevents.Event{}, err
	}
	return e, nil
}

func (r *MedEventsRepo) ListEventsByCategory(ctx context.Context, categoryID string) ([]medevents.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_id, event_name, date, next_date, notes, created_at
		FROM medical_events
		WHERE category_id = $1
		ORDER BY created_at ASC
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medevents.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *MedEventsRepo) UpdateEvent(ctx context.Context, e medevents.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_events
		SET event_name = $2, date = $3, next_date = $4, notes = $5
		WHERE id = $1
	`,
		e.ID,
		e.EventName,
		e.Date.Time,
		toNullDate(e.NextDate),
		e.Notes,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medevents.ErrNotFound
	}
	return nil
}

func (r *MedEventsRepo) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medevents.ErrNotFound
	}
	return nil
}

func scanEvent(row rowScanner) (medevents.Event, error) {
	var (
		e  medevents.Event
		d  time.Time
		nd sql.NullTime
	)
	if err := row.Scan(
		&e.ID,
		&e.CategoryID,
		&e.EventName,
		&d,
		&nd,
		&e.Notes,
		&e.CreatedAt,
	); err != nil {
		return medevents.Event{}, err
	}

	e.Date = dates.ISODate{Time: d}
	if nd.Valid {
		e.NextDate = dates.ISODate{Time: nd.Time}
	}
	return e, nil
}

// next_date es DATE nullable: cero => NULL
func toNullDate(d dates.ISODate) sql.NullTime {
	if d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}
