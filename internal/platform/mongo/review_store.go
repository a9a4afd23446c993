package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewStore implements store.ReviewStore on the reviews collection.
type ReviewStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure ReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*ReviewStore)(nil)

// NewReviewStore creates a ReviewStore backed by db.
func NewReviewStore(db *mongo.Database, logger *slog.Logger) *ReviewStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewStore{
		coll:   db.Collection(ReviewsCollection),
		logger: logger.With(slog.String("store", "review")),
	}
}

// ListAll implements store.ReviewStore.ListAll
func (s *ReviewStore) ListAll(ctx context.Context) ([]domain.Review, error) {
	return s.find(ctx, bson.M{})
}

// ListByService implements store.ReviewStore.ListByService
func (s *ReviewStore) ListByService(ctx context.Context, serviceID string) ([]domain.Review, error) {
	return s.find(ctx, bson.M{"serviceId": serviceID})
}

// ListByOwner implements store.ReviewStore.ListByOwner
func (s *ReviewStore) ListByOwner(ctx context.Context, email string) ([]domain.Review, error) {
	return s.find(ctx, bson.M{"userEmail": email})
}

// GetByID implements store.ReviewStore.GetByID
func (s *ReviewStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
	var review domain.Review
	if err := s.coll.FindOne(ctx, byID(id)).Decode(&review); err != nil {
		return nil, mapEntityError(err, store.ErrReviewNotFound)
	}
	return &review, nil
}

// Create implements store.ReviewStore.Create
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) (*store.InsertResult, error) {
	review.ID = primitive.NilObjectID

	res, err := s.coll.InsertOne(ctx, review)
	if err != nil {
		return nil, store.NewStoreError("review", "insert", "failed to insert review", MapError(err))
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, store.NewStoreError("review", "insert", fmt.Sprintf("unexpected id type %T", res.InsertedID), store.ErrInvalidID)
	}
	review.ID = id

	s.logger.Debug("review created", slog.String("review_id", id.Hex()), slog.String("service_id", review.ServiceID))
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// Update implements store.ReviewStore.Update
func (s *ReviewStore) Update(ctx context.Context, id primitive.ObjectID, patch domain.ReviewPatch) (*store.UpdateResult, error) {
	if patch.IsEmpty() {
		return nil, store.NewStoreError("review", "update", "no fields to set", store.ErrInvalidEntity)
	}

	res, err := s.coll.UpdateOne(ctx, byID(id), bson.M{"$set": patch})
	if err != nil {
		return nil, store.NewStoreError("review", "update", "failed to update review", MapError(err))
	}

	return &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete implements store.ReviewStore.Delete
func (s *ReviewStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return nil, store.NewStoreError("review", "delete", "failed to delete review", MapError(err))
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s *ReviewStore) find(ctx context.Context, filter interface{}) ([]domain.Review, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, store.NewStoreError("review", "find", "failed to query reviews", MapError(err))
	}

	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, store.NewStoreError("review", "find", "failed to decode reviews", MapError(err))
	}
	return reviews, nil
}
