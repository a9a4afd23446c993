package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/servicehub/servicehub-api/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(&mocks.MockPinger{})

	rr := serve(t, http.MethodGet, "/", "/", "", h.Root, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Service Provider server is running", rr.Body.String())

	rr = serve(t, http.MethodGet, "/health", "/health", "", h.Health, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rr.Body.String())

	down := NewHealthHandler(&mocks.MockPinger{Err: errors.New("no reachable servers")})
	rr = serve(t, http.MethodGet, "/health", "/health", "", down.Health, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "Database unavailable", errorMessage(t, rr))
}
