package middleware

import (
	"context"
	"net/http"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/models"
)

// RoleLookup resolves the stored role for an authenticated email. One store
// read per guarded request.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (models.UserRole, error)
}

// AdminOnly guards a route so only users with the admin role pass. Must run
// after VerifyToken.
func AdminOnly(users RoleLookup) func(http.Handler) http.Handler {
	return requireRole(users, models.RoleAdmin)
}

// InstructorOnly guards a route so only users with the instructor role pass.
// Must run after VerifyToken.
func InstructorOnly(users RoleLookup) func(http.Handler) http.Handler {
	return requireRole(users, models.RoleInstructor)
}

func requireRole(users RoleLookup, role models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := EmailFromContext(r.Context())
			if !ok {
				writeGuardError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			stored, err := users.RoleByEmail(r.Context(), email)
			if err != nil {
				writeGuardError(w, http.StatusInternalServerError, "failed to check user role")
				return
			}
			if stored != role {
				writeGuardError(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
