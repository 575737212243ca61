package auth

import "strings"

// Principal es el llamador autenticado.
type Principal struct {
	Username string
	Roles    []Role
}

// NewPrincipal parsea los nombres de rol que vienen del token.
// Los nombres desconocidos se descartan.
func NewPrincipal(username string, roleNames ...string) Principal {
	p := Principal{Username: strings.TrimSpace(username)}
	for _, name := range roleNames {
		r, err := ParseRole(name)
		if err != nil {
			continue
		}
		if !p.HasRole(r) {
			p.Roles = append(p.Roles, r)
		}
	}
	return p
}

func (p Principal) HasRole(r Role) bool {
	for _, have := range p.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// IsClientScoped: el principal solo puede ver registros vinculados a su username.
func (p Principal) IsClientScoped() bool {
	for _, r := range p.Roles {
		if r.IsClientRole() {
			return true
		}
	}
	return false
}

func (p Principal) IsAnonymous() bool {
	return p.Username == ""
}
