package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const userContextKey contextKey = "user"

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	ParseToken(tokenString string) (jwt.MapClaims, error)
}

// Authenticate reads an optional bearer token. Requests without one pass
// through as anonymous; a token that fails verification is rejected.
func Authenticate(parser TokenParser, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				writeError(w, http.StatusUnauthorized, "authorization header must be a bearer token", "UnauthorizedError")
				return
			}

			claims, err := parser.ParseToken(strings.TrimSpace(tokenString))
			if err != nil {
				logger.Debug("rejected bearer token", slog.Any("error", err))
				writeError(w, http.StatusUnauthorized, "session expired or invalid, please log in again", "UnauthorizedError")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin lets the request through only for admin sessions.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			writeError(w, http.StatusForbidden, "admin access required", "ForbiddenError")
			return
		}
		next.ServeHTTP(w, r)
	})
}
