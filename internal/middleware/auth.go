package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/floorboard/service/internal/auth"
	"github.com/floorboard/service/internal/response"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// AdminIDKey is the context key for the authenticated admin's ID.
const AdminIDKey contextKey = "adminID"

// AdminEmailKey is the context key for the email claim, when the token carries one.
const AdminEmailKey contextKey = "adminEmail"

// RequireAuth returns middleware that validates a Bearer JWT and injects
// the admin claims into the request context.
func RequireAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "No token provided")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				response.Unauthorized(w, "Malformed authorization header")
				return
			}

			claims, err := auth.ParseToken(jwtSecret, strings.TrimSpace(parts[1]))
			if err != nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			ctx = context.WithValue(ctx, AdminEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminID returns the admin identifier placed in ctx by RequireAuth.
func AdminID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AdminIDKey).(string)
	return id, ok && id != ""
}
