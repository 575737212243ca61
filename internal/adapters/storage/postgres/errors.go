package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"vet-clinic-records/internal/ports/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// mapError traduce errores del driver a los sentinels de storage.
// Lo que no tiene traducción se devuelve tal cual (p.ej. una FK violada al borrar
// un client con pets).
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", storage.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

// checkDeleted devuelve storage.ErrNotFound si el DELETE no tocó filas.
func checkDeleted(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
