package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID parses a hex ObjectID taken from a request path.
func ParseID(field, hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, NewValidationError(field, "is required", ErrInvalidID)
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, NewValidationError(field, "has invalid format", ErrInvalidID)
	}
	return id, nil
}
