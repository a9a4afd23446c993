package store

import (
	"context"

	"github.com/servicehub/servicehub-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewStore defines the interface for review persistence.
type ReviewStore interface {
	// ListAll returns every review.
	ListAll(ctx context.Context) ([]domain.Review, error)

	// ListByService returns the reviews whose serviceId equals serviceID.
	// The service itself is not required to exist.
	ListByService(ctx context.Context, serviceID string) ([]domain.Review, error)

	// ListByOwner returns the reviews written by email.
	ListByOwner(ctx context.Context, email string) ([]domain.Review, error)

	// GetByID retrieves a review by identifier.
	// Returns ErrReviewNotFound if the review does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Review, error)

	// Create inserts the review. The identifier is generated by the store.
	Create(ctx context.Context, review *domain.Review) (*InsertResult, error)

	// Update sets only the fields present in patch.
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ReviewPatch) (*UpdateResult, error)

	// Delete removes the review.
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
