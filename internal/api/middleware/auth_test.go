package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/mocks"
	"github.com/servicehub/servicehub-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCookies = auth.CookiePolicy{Name: "token", SameSite: http.SameSiteStrictMode}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name         string
		cookie       *http.Cookie
		validateErr  error
		wantStatus   int
		wantMessage  string
		wantNextCall bool
	}{
		{
			name:        "missing cookie",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized access",
		},
		{
			name:        "invalid token",
			cookie:      &http.Cookie{Name: "token", Value: "bad"},
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized access",
		},
		{
			name:        "expired token",
			cookie:      &http.Cookie{Name: "token", Value: "old"},
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token expired",
		},
		{
			name:        "token in another cookie",
			cookie:      &http.Cookie{Name: "session", Value: "abc"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized access",
		},
		{
			name:        "unexpected validation failure",
			cookie:      &http.Cookie{Name: "token", Value: "abc"},
			validateErr: errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Authentication error",
		},
		{
			name:         "valid token",
			cookie:       &http.Cookie{Name: "token", Value: "good"},
			wantStatus:   http.StatusOK,
			wantNextCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      &auth.Claims{Email: "ana@example.com", Name: "Ana"},
			}
			mw := NewAuthMiddleware(jwtService, testCookies)

			called := false
			var got shared.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, _ = shared.GetIdentity(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/service/add", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			mw.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCall, called)
			if tt.wantNextCall {
				assert.Equal(t, "ana@example.com", got.Email)
				assert.Equal(t, "Ana", got.Name)
				return
			}

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Error)
		})
	}
}

func TestAuthenticatePassesCookieValue(t *testing.T) {
	var seen string
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			seen = token
			return &auth.Claims{Email: "ana@example.com"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "the-token"})
	rr := httptest.NewRecorder()
	NewAuthMiddleware(jwtService, testCookies).
		Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rr, req)

	assert.Equal(t, "the-token", seen)
}

func TestTraceMiddleware(t *testing.T) {
	var traceID string
	handler := TraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, traceID, 32)
}
