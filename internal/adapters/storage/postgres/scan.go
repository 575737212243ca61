package postgres

import "github.com/google/uuid"

// scanner es lo común entre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Las columnas id son UUID: un id mal formado no puede existir, y así evitamos
// que Postgres responda con un error de sintaxis (500) en vez de "no encontrado".
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
