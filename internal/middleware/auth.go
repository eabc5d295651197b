package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
)

// UserLookup resolves the account behind a token.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// AuthMiddleware creates a middleware that validates bearer tokens and
// attaches the caller to the request context. The account must still exist
// with the role the token was issued for, so deleting a user revokes its
// tokens.
func AuthMiddleware(tokenManager *auth.TokenManager, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			// Check Bearer prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			principal, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := users.FindByID(r.Context(), principal.UserID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			case err != nil:
				slog.ErrorContext(r.Context(), "resolving token subject", "user_id", principal.UserID, "error", err)
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			case user.Role != principal.Role:
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := auth.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role is not one of roles. It must run
// after AuthMiddleware.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.FromContext(r.Context()).HasRole(roles...) {
				respondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
