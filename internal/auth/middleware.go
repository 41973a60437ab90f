package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"bookstand/internal/platform/metrics"
	dErrors "bookstand/pkg/domain-errors"
	"bookstand/pkg/platform/httputil"
)

// TokenValidator defines the interface for validating access tokens.
type TokenValidator interface {
	Validate(tokenString string) (*Claims, error)
}

type contextKeyUsername struct{}

// ContextKeyUsername is exported for use in handler tests.
var ContextKeyUsername = contextKeyUsername{}

// GetUsername retrieves the authenticated username from the context. It is
// only set on requests that passed RequireAuth.
func GetUsername(ctx context.Context) string {
	username, ok := ctx.Value(ContextKeyUsername).(string)
	if !ok {
		return ""
	}
	return username
}

// RequireAuth gates protected routes on a valid bearer token. On success the
// verified username is bound to the request context for downstream handlers;
// it is deliberately not re-checked against the registry, so a token stays
// good for its full lifetime.
func RequireAuth(validator TokenValidator, m *metrics.Metrics, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
				claims, err := validator.Validate(token)
				if err != nil {
					ctx := r.Context()
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"error", err,
						"request_id", chimiddleware.GetReqID(ctx),
					)
					m.IncrementAuthFailures()
					httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token"))
					return
				}

				ctx := context.WithValue(r.Context(), ContextKeyUsername, claims.Username)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No Authorization header or invalid format
			ctx := r.Context()
			logger.WarnContext(ctx, "unauthorized access - missing token",
				"request_id", chimiddleware.GetReqID(ctx),
			)
			m.IncrementAuthFailures()
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
		})
	}
}
