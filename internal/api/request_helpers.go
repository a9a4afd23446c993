package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/platform/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxQueryInt bounds page and limit so the skip offset cannot overflow.
const maxQueryInt = 1_000_000

// pathParam returns the percent-decoded value of a path parameter. chi hands
// back the escaped segment whenever the request carries a RawPath.
func pathParam(r *http.Request, name string) (string, error) {
	value, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return "", domain.NewValidationError(name, "has invalid encoding", domain.ErrValidation)
	}
	return value, nil
}

// getPathID extracts and parses an ObjectID path parameter. field names the
// identifier in error messages, e.g. "service ID".
func getPathID(r *http.Request, paramName, field string) (primitive.ObjectID, error) {
	raw, err := pathParam(r, paramName)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return domain.ParseID(field, raw)
}

// requireOwner checks that the authenticated identity owns the email in
// the path. It writes a 401 and returns false otherwise.
func requireOwner(w http.ResponseWriter, r *http.Request, paramName string) (string, bool) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	email, err := pathParam(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", false
	}

	identity, ok := shared.GetIdentity(r.Context())
	if !ok || identity.Email != email {
		log.Warn("identity does not match requested owner")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return "", false
	}
	return email, true
}

// queryInt parses an optional integer query parameter in [1, maxQueryInt].
// Absent values yield 0 so the store default applies.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer", domain.ErrValidation)
	}
	if n < 1 {
		return 0, domain.NewValidationError(name, "must be at least 1", domain.ErrValidation)
	}
	if n > maxQueryInt {
		return 0, domain.NewValidationError(name, "is too large", domain.ErrValidation)
	}
	return n, nil
}

// decodeAndValidate decodes the JSON body into v and validates it. On
// failure it writes a 400 and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			HandleAPIError(w, r, err, "")
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, "Validation error")
		return false
	}
	return true
}
