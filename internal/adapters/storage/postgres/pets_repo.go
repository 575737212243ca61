package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const selectPet = `SELECT id, name, birth_date, animal_id, client_id, created_at FROM pets`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO pets (id, name, birth_date, animal_id, client_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.Name, p.BirthDate, p.AnimalID, p.ClientID, p.CreatedAt)
	return mapError(err)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	if !validUUID(id) {
		return mapError(sql.ErrNoRows)
	}
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return checkDeleted(res)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if !validUUID(id) {
		return pets.Pet{}, mapError(sql.ErrNoRows)
	}
	return scanPet(conn(ctx, r.db).QueryRowContext(ctx, selectPet+` WHERE id = $1`, id))
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, selectPet+` ORDER BY created_at ASC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// birth_date es DATE; pgx lo devuelve como time.Time a medianoche UTC.
func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	if err := s.Scan(&p.ID, &p.Name, &p.BirthDate, &p.AnimalID, &p.ClientID, &p.CreatedAt); err != nil {
		return pets.Pet{}, mapError(err)
	}
	return p, nil
}
