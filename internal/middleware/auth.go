package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Divy2308/Synobiz/internal/config"
	"github.com/Divy2308/Synobiz/internal/models"
	"github.com/Divy2308/Synobiz/internal/utils"
)

// WithAuth reads the session JWT from the "session" cookie or an
// Authorization: Bearer header and binds the principal to the request
// context. Requests without a valid token pass through unauthenticated;
// RequireAuth/RequireRoles decide what that means per route.
func WithAuth(log zerolog.Logger, cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tok string
			if c, err := r.Cookie("session"); err == nil {
				tok = c.Value
			} else if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tok = strings.TrimPrefix(h, "Bearer ")
			}

			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.ParseJWT(cfg.SessionSecret, tok)
			if err != nil {
				// clear a broken/expired cookie so it stops being sent
				http.SetCookie(w, &http.Cookie{
					Name:     "session",
					Value:    "",
					Path:     "/",
					HttpOnly: true,
					MaxAge:   -1,
				})
				next.ServeHTTP(w, r)
				return
			}

			role, err := models.ParseRole(claims.Role)
			if err != nil {
				log.Warn().Str("role", claims.Role).Msg("token carries unknown role")
				next.ServeHTTP(w, r)
				return
			}

			p := models.Principal{
				ID:       claims.UserID,
				UserName: claims.UserName,
				Role:     role,
				Name:     claims.Name,
			}
			next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), p)))
		})
	}
}
