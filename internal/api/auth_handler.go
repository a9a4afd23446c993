package api

import (
	"log/slog"
	"net/http"

	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/platform/logger"
	"github.com/servicehub/servicehub-api/internal/service/auth"
)

// AuthHandler issues and clears the auth cookie.
type AuthHandler struct {
	jwtService auth.JWTService
	cookies    auth.CookiePolicy
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService, cookies auth.CookiePolicy) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		cookies:    cookies,
	}
}

// IssueToken handles POST /jwt. The identity in the body is trusted as
// given; it is established by the frontend's sign-in provider.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), auth.Identity{Email: req.Email, Name: req.Name})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).
		Debug("auth cookie issued", slog.Time("expires_at", expiresAt))

	http.SetCookie(w, h.cookies.Issue(token, expiresAt))
	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookies.Clear())
	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}
