package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"petcare/internal/domain/animals"
	"petcare/internal/platform/dates"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id, name, type, birth_date, photo,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.Name,
		a.Type,
		a.BirthDate.Time,
		a.Photo,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, birth_date, photo, created_at, updated_at
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, birth_date, photo, created_at, updated_at
		FROM animals
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET name = $2, type = $3, birth_date = $4, photo = $5, updated_at = $6
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Type,
		a.BirthDate.Time,
		a.Photo,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var (
		a  animals.Animal
		bd time.Time
	)
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&bd,
		&a.Photo,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	// birth_date es DATE: pgx lo mapea a time.Time midnight UTC
	a.BirthDate = dates.ISODate{Time: bd}
	return a, nil
}
