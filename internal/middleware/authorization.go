package middleware

import (
	"net/http"

	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/utils"
)

// RolesAllowed is the whole authorization policy: role membership in the
// route's declared set. There is no per-row authorization anywhere.
func RolesAllowed(role models.Role, allowed ...models.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireAuth fails closed when no principal is bound (set by WithAuth).
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetPrincipal(r.Context()); !ok {
			utils.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles allows the request only when the current principal's role is
// in the given set. Unauthenticated requests get 401, wrong role 403.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := utils.GetPrincipal(r.Context())
			if !ok {
				utils.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !RolesAllowed(p.Role, roles...) {
				utils.Error(w, http.StatusForbidden, "you do not have permission to access this page")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
