package middleware

import (
	"context"
	"net/http"
	"strings"

	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/ports/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

const (
	HeaderDebugUser  = "X-Debug-User"
	HeaderDebugRoles = "X-Debug-Roles"
)

// AuthContext:
// - Si verifier != nil y viene Bearer token => intenta Verify() y setea el principal.
// - Si verifier == nil => modo dev: X-Debug-User (+ X-Debug-Roles CSV) setean el principal.
// - Si no hay principal, el request sigue igual; RequireAuth o el handler deciden el 401.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				username := strings.TrimSpace(r.Header.Get(HeaderDebugUser))
				if username == "" {
					next.ServeHTTP(w, r)
					return
				}
				p := auth.NewPrincipal(username, splitCSV(r.Header.Get(HeaderDebugRoles))...)
				next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.FromContext(r.Context(), nil).Warn("token rejected", map[string]any{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireAuth corta con 401 si no hay principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipal(r.Context())
		if !ok || p.IsAnonymous() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	return p, ok
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
