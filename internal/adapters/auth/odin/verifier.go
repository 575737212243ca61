package odin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vet-clinic-records/internal/platform/httpclient"
	"vet-clinic-records/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("odin verifier not configured")
	ErrUnauthorized  = errors.New("odin unauthorized")
	ErrUpstream      = errors.New("odin upstream error")
	ErrTokenEmpty    = errors.New("token is empty")
)

const verifyPath = "/v1/tokens/verify"

type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío se usa "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration
}

// Verifier implementa auth.AuthVerifier delegando en el IAM Odin.
type Verifier struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

var _ auth.AuthVerifier = (*Verifier)(nil)

func NewVerifier(cfg Config) (*Verifier, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	c, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	return &Verifier{http: c, apiKey: strings.TrimSpace(cfg.APIKey), apiKeyHeader: h}, nil
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Principal, error) {
	if v == nil || v.http == nil {
		return auth.Principal{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Principal{}, ErrTokenEmpty
	}

	headers := map[string]string{
		v.apiKeyHeader:  v.apiKey,
		"Authorization": "Bearer " + token,
	}

	var out verifyResponse
	err := v.http.DoJSON(ctx, http.MethodPost, verifyPath, headers, verifyRequest{Token: token}, &out)
	switch code := httpclient.StatusCode(err); {
	case err == nil:
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return auth.Principal{}, ErrUnauthorized
	default:
		return auth.Principal{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	p := auth.NewPrincipal(out.Username, out.Roles...)
	if p.IsAnonymous() {
		return auth.Principal{}, fmt.Errorf("%w: response missing username", ErrUpstream)
	}
	return p, nil
}
