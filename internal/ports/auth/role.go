package auth

import (
	"fmt"
	"strings"
)

// Role es el nivel de capacidad de un usuario. Enumeración cerrada.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleVet    Role = "VET"
	RoleClient Role = "CLIENT"
)

// authorityPrefix es como algunos emisores de tokens nombran los roles ("ROLE_CLIENT").
const authorityPrefix = "ROLE_"

var knownRoles = map[Role]struct{}{
	RoleAdmin:  {},
	RoleVet:    {},
	RoleClient: {},
}

// ParseRole acepta "client", "CLIENT" o "ROLE_CLIENT" indistintamente.
func ParseRole(name string) (Role, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, authorityPrefix)

	r := Role(n)
	if _, ok := knownRoles[r]; !ok {
		return "", fmt.Errorf("unknown role %q", name)
	}
	return r, nil
}

// IsClientRole es el único rol con visibilidad restringida a sus propios registros.
func (r Role) IsClientRole() bool {
	return r == RoleClient
}

// Authority devuelve el nombre con prefijo, p.ej. "ROLE_VET".
func (r Role) Authority() string {
	return authorityPrefix + string(r)
}
