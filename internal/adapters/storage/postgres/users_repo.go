package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/users"
	"vet-clinic-records/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const selectUser = `SELECT id, username, password_hash, role, created_at FROM users`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Username, u.PasswordHash, string(u.Role), u.CreatedAt)
	return mapError(err)
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	if !validUUID(id) {
		return mapError(sql.ErrNoRows)
	}
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return checkDeleted(res)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	if !validUUID(id) {
		return users.User{}, mapError(sql.ErrNoRows)
	}
	return scanUser(conn(ctx, r.db).QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return scanUser(conn(ctx, r.db).QueryRowContext(ctx, selectUser+` WHERE username = $1`, username))
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, selectUser+` ORDER BY created_at ASC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	var role string
	if err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		return users.User{}, mapError(err)
	}
	u.Role = auth.Role(role)
	return u, nil
}
