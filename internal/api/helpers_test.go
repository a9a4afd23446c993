package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/stretchr/testify/require"
)

// serve routes a single request through a chi router so URL params resolve.
func serve(t *testing.T, method, pattern, target string, body string, h http.HandlerFunc, identity *shared.Identity) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	if identity != nil {
		id := *identity
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(shared.WithIdentity(req.Context(), id)))
			})
		})
	}
	r.Method(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body shared.ErrorResponse
	decodeBody(t, rr, &body)
	return body.Error
}
