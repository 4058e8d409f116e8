package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quizmaster/internal/config"
)

type contextKey string

const userClaimsKey contextKey = "userClaims"

var ErrNoClaims = errors.New("no user claims in context")

// AuthMiddleware requires a bearer token on every route it wraps. A missing
// token is a 401; an invalid, tampered or expired one is a 403.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			config.Error(w, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			log.WithError(err).Warn("Rejected bearer token")
			config.Error(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserClaimsFromContext returns the claims stored by AuthMiddleware.
func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(userClaimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}
