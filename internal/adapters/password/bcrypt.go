package password

import (
	"fmt"

	"vet-clinic-records/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

// BcryptEncoder implementa auth.PasswordEncoder.
type BcryptEncoder struct {
	cost int
}

var _ auth.PasswordEncoder = BcryptEncoder{}

// NewBcryptEncoder usa bcrypt.DefaultCost si cost está fuera de rango.
func NewBcryptEncoder(cost int) BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptEncoder{cost: cost}
}

func (e BcryptEncoder) Encode(raw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

func (e BcryptEncoder) Matches(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
