package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"techevents/internal/delivery/http/helpers"
	"techevents/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the user ID in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, found := strings.Cut(header, " ")
			if header == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, "Missing authorization header")
				return
			}
			if !found || !strings.EqualFold(scheme, "Bearer") {
				helpers.WriteJSONError(w, http.StatusUnauthorized, "Invalid authorization format")
				return
			}
			token = strings.TrimSpace(token)
			if token == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, "Missing token")
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "err", err)
				helpers.WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			next(w, r.WithContext(SetUserID(r.Context(), userID)))
		}
	}
}
