package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/platform/logger"
	"github.com/servicehub/servicehub-api/internal/service/auth"
)

// AuthMiddleware authenticates requests with the token carried in the
// auth cookie.
type AuthMiddleware struct {
	jwtService auth.JWTService
	cookies    auth.CookiePolicy
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, cookies auth.CookiePolicy) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		cookies:    cookies,
	}
}

// Authenticate validates the auth cookie and adds the caller identity to
// the request context. Requests without a valid token are rejected with
// 401 and never reach next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), slog.Default())

		token, err := m.cookies.Read(r)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Unauthorized access", err)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Token expired", err)
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrMissingEmail),
				errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Unauthorized access", err,
					shared.WithElevatedLogLevel())
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Authentication error", err)
			}
			return
		}

		log.Debug("request authenticated", slog.String("token_id", claims.ID))

		ctx := shared.WithIdentity(r.Context(), shared.Identity{Email: claims.Email, Name: claims.Name})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
