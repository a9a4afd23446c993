package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/service/auth"
	"github.com/servicehub/servicehub-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Authentication and authorization errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyPatch),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidID),
		errors.Is(err, auth.ErrMissingEmail),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. fallback is used for unrecognized errors, which
// are reported as server errors.
func GetSafeErrorMessage(err error, fallback string) string {
	if fallback == "" {
		fallback = "An unexpected error occurred"
	}
	if err == nil {
		return fallback
	}

	var validationErr *domain.ValidationError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized access"

	case errors.Is(err, store.ErrServiceNotFound):
		return "Service not found"

	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case store.IsDuplicateError(err):
		return "Already exists"

	case errors.Is(err, domain.ErrEmptyPatch),
		errors.Is(err, store.ErrInvalidEntity):
		return "Update contains no fields"

	case errors.Is(err, domain.ErrInvalidID) && errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s format", validationErr.Field)

	case errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)

	case errors.Is(err, auth.ErrMissingEmail):
		return "Invalid email: required field"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	default:
		return fallback
	}
}

// SanitizeValidationError turns validator errors into a short message
// naming the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", lowerFirst(fe.Field()), getValidationTagMessage(fe.Tag()))
}

// HandleAPIError writes the response for err and logs it. fallback is the
// client message for unexpected errors, e.g. "Failed to fetch services".
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err, fallback)

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gte", "min":
		return "too small"
	case "lte", "max":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
