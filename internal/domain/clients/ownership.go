package clients

import (
	"context"
	"errors"
	"fmt"

	"vet-clinic-records/internal/platform/apperr"
)

// LinkedUsername expone el username de la cuenta vinculada al client.
// ok=false si no está vinculado o si la cuenta ya no existe.
// Se usa desde pets para autorizar sin que pets dependa de users.
func (s *Service) LinkedUsername(ctx context.Context, c Client) (string, bool, error) {
	if !c.IsLinked() || s.users == nil {
		return "", false, nil
	}

	u, err := s.users.GetByID(ctx, *c.UserID)
	if errors.Is(err, apperr.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("resolve linked user: %w", err)
	}
	return u.Username, true, nil
}
