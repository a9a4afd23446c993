package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/servicehub/servicehub-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MapError maps a driver error to the store error taxonomy, wrapping the
// original to preserve context. It should wrap every driver call result.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case errors.Is(err, primitive.ErrInvalidHex):
		return fmt.Errorf("%w: %v", store.ErrInvalidID, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("mongo operation interrupted: %w", err)
	default:
		return fmt.Errorf("mongo operation failed: %w", err)
	}
}

// mapEntityError maps err and substitutes the entity-specific not-found
// sentinel, so callers can test for e.g. store.ErrServiceNotFound.
func mapEntityError(err error, notFound error) error {
	mapped := MapError(err)
	if errors.Is(mapped, store.ErrNotFound) {
		return fmt.Errorf("%w: %v", notFound, err)
	}
	return mapped
}
