package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

const selectClient = `SELECT id, name, surname, user_id, created_at FROM clients`

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO clients (id, name, surname, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.Surname, toNullString(c.UserID), c.CreatedAt)
	return mapError(err)
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	if !validUUID(id) {
		return mapError(sql.ErrNoRows)
	}
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return checkDeleted(res)
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	if !validUUID(id) {
		return clients.Client{}, mapError(sql.ErrNoRows)
	}
	return scanClient(conn(ctx, r.db).QueryRowContext(ctx, selectClient+` WHERE id = $1`, id))
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, selectClient+` ORDER BY created_at ASC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanClient(s scanner) (clients.Client, error) {
	var c clients.Client
	var userID sql.NullString
	if err := s.Scan(&c.ID, &c.Name, &c.Surname, &userID, &c.CreatedAt); err != nil {
		return clients.Client{}, mapError(err)
	}
	if userID.Valid {
		id := userID.String
		c.UserID = &id
	}
	return c, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
