package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/auth"
)

type contextKey string

const emailKey contextKey = "email"

// VerifyToken guards a route with a bearer token check. The decoded email
// claim is attached to the request context for downstream handlers.
func VerifyToken(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeGuardError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeGuardError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := manager.ValidateJWT(parts[1])
			if err != nil {
				writeGuardError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext returns the authenticated email attached by VerifyToken.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

// ContextWithEmail is used by tests to exercise handlers behind the guard.
func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

func writeGuardError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
	})
}
