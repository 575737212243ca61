package users

import (
	"time"

	"vet-clinic-records/internal/ports/auth"
)

// User es una cuenta de staff o de cliente. PasswordHash nunca sale por la API.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         auth.Role

	CreatedAt time.Time
}
