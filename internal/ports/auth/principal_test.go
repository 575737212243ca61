package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"CLIENT", RoleClient},
		{"role_client", RoleClient},
		{" Role_Vet ", RoleVet},
		{"admin", RoleAdmin},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseRole("ROLE_JANITOR")
	assert.Error(t, err)
}

func TestNewPrincipal_DropsUnknownAndDuplicates(t *testing.T) {
	p := NewPrincipal(" alice ", "ROLE_CLIENT", "client", "superuser")

	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, []Role{RoleClient}, p.Roles)
	assert.True(t, p.IsClientScoped())
}

func TestPrincipal_StaffIsNotClientScoped(t *testing.T) {
	assert.False(t, NewPrincipal("bob", "ROLE_VET").IsClientScoped())
	assert.False(t, NewPrincipal("carol", "ADMIN").IsClientScoped())
	assert.False(t, NewPrincipal("dave").IsClientScoped())
	assert.True(t, NewPrincipal("").IsAnonymous())
}

func TestRole_Authority(t *testing.T) {
	assert.Equal(t, "ROLE_CLIENT", RoleClient.Authority())
	assert.True(t, RoleClient.IsClientRole())
	assert.False(t, RoleAdmin.IsClientRole())
}
