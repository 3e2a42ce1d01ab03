package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/flowcrm/flowcrm-go/internal/crypto"
	"github.com/flowcrm/flowcrm-go/internal/model"
)

type contextKey string

const claimsKey contextKey = "claims"

// Auth returns middleware that validates a Bearer token from the
// Authorization header. A missing header is 401; a token that fails
// signature verification is 403. Valid claims are stored on the request
// context for handlers to pass into repository and engine calls.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "access token required")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.VerifyToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, model.UserClaims{
				UserID:   claims.UserID,
				Username: claims.Username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the authenticated user claims from the
// request context.
func ClaimsFromContext(ctx context.Context) (model.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(model.UserClaims)
	return claims, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
