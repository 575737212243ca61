package odin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic-records/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOdin(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Header.Get("X-Api-Key") != "secret" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		var in verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		switch in.Token {
		case "client-token":
			_ = json.NewEncoder(w).Encode(verifyResponse{Username: "alice", Roles: []string{"ROLE_CLIENT"}})
		case "empty-user":
			_ = json.NewEncoder(w).Encode(verifyResponse{Roles: []string{"ROLE_VET"}})
		default:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifier_Verify(t *testing.T) {
	srv := newOdin(t)
	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	p, err := v.Verify(context.Background(), "client-token")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, []auth.Role{auth.RoleClient}, p.Roles)

	_, err = v.Verify(context.Background(), "revoked")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = v.Verify(context.Background(), "empty-user")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = v.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestNewVerifier_NotConfigured(t *testing.T) {
	_, err := NewVerifier(Config{BaseURL: "http://odin"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
