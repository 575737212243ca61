package pets

import (
	"context"
	"strings"

	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/ports/auth"
)

// authorized decide si el principal puede ver/operar sobre mascotas del client.
//   - Rol CLIENT: solo si el client está vinculado a una cuenta con el mismo
//     username (sin distinguir mayúsculas).
//   - Cualquier otro rol es staff y ve todo.
//
// Para staff no se hace ningún lookup.
func (s *Service) authorized(ctx context.Context, p auth.Principal, c clients.Client) (bool, error) {
	if !p.IsClientScoped() {
		return true, nil
	}

	username, ok, err := s.clients.LinkedUsername(ctx, c)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return strings.EqualFold(username, p.Username), nil
}

// authorizedByClientID resuelve el client y aplica authorized.
// Un client que ya no existe cuenta como no vinculado.
func (s *Service) authorizedByClientID(ctx context.Context, p auth.Principal, clientID string) (bool, error) {
	if !p.IsClientScoped() {
		return true, nil
	}

	c, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return s.authorized(ctx, p, c)
}
