package jwtauth

import (
	"context"
	"testing"
	"time"

	"vet-clinic-records/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_SignAndVerify(t *testing.T) {
	v, err := NewVerifier("s3cret")
	require.NoError(t, err)

	tok, err := v.Sign("alice", []string{"ROLE_CLIENT", "unknown"}, time.Hour)
	require.NoError(t, err)

	p, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, []auth.Role{auth.RoleClient}, p.Roles)
}

func TestVerifier_Rejects(t *testing.T) {
	v, err := NewVerifier("s3cret")
	require.NoError(t, err)
	other, err := NewVerifier("other")
	require.NoError(t, err)

	expired, err := v.Sign("alice", nil, -time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := other.Sign("alice", nil, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noSub, err := v.Sign("", []string{"VET"}, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// sin exp
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"})
	s, err := raw.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), s)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewVerifier_EmptySecret(t *testing.T) {
	_, err := NewVerifier(" ")
	assert.ErrorIs(t, err, ErrNoSecret)
}
