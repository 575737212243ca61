package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO animals (id, species, created_at)
		VALUES ($1, $2, $3)
	`, a.ID, a.Species, a.CreatedAt)
	return mapError(err)
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	if !validUUID(id) {
		return mapError(sql.ErrNoRows)
	}
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return checkDeleted(res)
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	if !validUUID(id) {
		return animals.Animal{}, mapError(sql.ErrNoRows)
	}
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT id, species, created_at FROM animals WHERE id = $1
	`, id)
	return scanAnimal(row)
}

func (r *AnimalsRepo) GetBySpecies(ctx context.Context, species string) (animals.Animal, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT id, species, created_at FROM animals WHERE species = $1
	`, species)
	return scanAnimal(row)
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
		SELECT id, species, created_at FROM animals ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, mapError(err)
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

func scanAnimal(s scanner) (animals.Animal, error) {
	var a animals.Animal
	if err := s.Scan(&a.ID, &a.Species, &a.CreatedAt); err != nil {
		return animals.Animal{}, mapError(err)
	}
	return a, nil
}
