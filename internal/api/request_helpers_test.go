package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPathParam(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "owner@example.com", want: "owner@example.com"},
		{name: "escaped at sign", raw: "owner%40example.com", want: "owner@example.com"},
		{name: "escaped plus", raw: "owner%2B1%40example.com", want: "owner+1@example.com"},
		{name: "literal plus stays", raw: "owner+1@example.com", want: "owner+1@example.com"},
		{name: "bad escape", raw: "owner%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathParam(requestWithParam("email", tt.raw), "email")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrValidation))
				assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireOwnerRejectsBadEscape(t *testing.T) {
	rr := httptest.NewRecorder()
	_, ok := requireOwner(rr, requestWithParam("email", "owner%zz"), "email")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestQueryIntBounds(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 0},
		{query: "page=1", want: 1},
		{query: "page=1000000", want: maxQueryInt},
		{query: "page=1000001", wantErr: true},
		{query: "page=9223372036854775807", wantErr: true},
		{query: "page=99999999999999999999", wantErr: true},
		{query: "page=0", wantErr: true},
		{query: "page=-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/services?"+tt.query, nil)
			got, err := queryInt(req, "page")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
