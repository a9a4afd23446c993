package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/servicehub/servicehub-api/internal/config"
)

// CookiePolicy decides the attributes of the auth cookie. Production
// deployments serve a frontend on another site, which needs Secure plus
// SameSite=None; everywhere else the cookie stays same-site.
type CookiePolicy struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
}

// NewCookiePolicy builds the policy for the configured deployment mode.
func NewCookiePolicy(authCfg config.AuthConfig, serverCfg config.ServerConfig) CookiePolicy {
	policy := CookiePolicy{
		Name:     authCfg.CookieName,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
	if serverCfg.IsProduction() {
		policy.Secure = true
		policy.SameSite = http.SameSiteNoneMode
	}
	return policy
}

// Issue returns the httpOnly cookie carrying token until expiresAt.
func (p CookiePolicy) Issue(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     p.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}

// Clear returns a cookie that deletes the auth cookie. Browsers only drop
// it when the attributes match the ones it was issued with.
func (p CookiePolicy) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     p.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}

// Read extracts the token from the request, or ErrMissingToken.
func (p CookiePolicy) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(p.Name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrMissingToken
		}
		return "", err
	}
	if cookie.Value == "" {
		return "", ErrMissingToken
	}
	return cookie.Value, nil
}
