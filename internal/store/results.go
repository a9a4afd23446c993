package store

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertResult acknowledges an insert and reports the generated identifier.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// UpdateResult acknowledges a field-merge update. It never carries the
// updated document.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult acknowledges a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// RegisterResult reports the outcome of an insert-if-absent user registration.
// InsertedID is nil when a user with the email already existed.
type RegisterResult struct {
	Acknowledged bool                `json:"acknowledged"`
	InsertedID   *primitive.ObjectID `json:"insertedId"`
	Existing     bool                `json:"existing"`
	Message      string              `json:"message,omitempty"`
}
