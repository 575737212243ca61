package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSecret     = errors.New("jwt secret is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims: sub es el username; roles admite "ROLE_CLIENT" o "CLIENT".
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Verifier valida tokens HS256 firmados con un secreto compartido.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

var _ auth.AuthVerifier = (*Verifier)(nil)

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoSecret
	}
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Principal, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return auth.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	p := auth.NewPrincipal(claims.Subject, claims.Roles...)
	if p.IsAnonymous() {
		return auth.Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return p, nil
}

// Sign emite un token para username con los roles dados. Lo usan los tests y la
// tooling de desarrollo.
func (v *Verifier) Sign(username string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
