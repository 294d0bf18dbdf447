package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"troop_cookies/internal/models"
)

// contextKey is a private type for request-context values.
type contextKey string

// Context keys under which the middleware stores the authenticated identity.
const (
	ContextUserID  contextKey = "contextUserID"
	ContextIsAdmin contextKey = "contextIsAdmin"
)

// CheckJWTMiddleware validates the Authorization header, parses the bearer
// token, and stores the scout's id and admin flag in the request context.
func CheckJWTMiddleware() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			if authHeader == "" {
				writeErrorResponse(w, "missing auth header", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeErrorResponse(w, "invalid auth header", http.StatusUnauthorized)
				return
			}

			claims, err := ParseToken(parts[1])
			if err != nil {
				writeErrorResponse(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextIsAdmin, claims.IsAdmin)
			h.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
