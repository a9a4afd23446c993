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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServiceStore implements store.ServiceStore on the services collection.
type ServiceStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure ServiceStore implements store.ServiceStore interface
var _ store.ServiceStore = (*ServiceStore)(nil)

// NewServiceStore creates a ServiceStore backed by db.
func NewServiceStore(db *mongo.Database, logger *slog.Logger) *ServiceStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceStore{
		coll:   db.Collection(ServicesCollection),
		logger: logger.With(slog.String("store", "service")),
	}
}

// List implements store.ServiceStore.List
func (s *ServiceStore) List(ctx context.Context, q store.ServiceQuery) (*store.ServicePage, error) {
	q = q.WithDefaults()
	filter := serviceFilter(q)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, store.NewStoreError("service", "count", "failed to count services", MapError(err))
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	services, err := s.find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("listed services",
		slog.Int64("total", total),
		slog.Int("page", q.Page),
		slog.Int("returned", len(services)))

	return store.NewServicePage(services, total, q), nil
}

// Featured implements store.ServiceStore.Featured
func (s *ServiceStore) Featured(ctx context.Context, limit int) ([]domain.Service, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	return s.find(ctx, bson.M{}, opts)
}

// GetByID implements store.ServiceStore.GetByID
func (s *ServiceStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Service, error) {
	var service domain.Service
	if err := s.coll.FindOne(ctx, byID(id)).Decode(&service); err != nil {
		return nil, mapEntityError(err, store.ErrServiceNotFound)
	}
	return &service, nil
}

// ListByOwner implements store.ServiceStore.ListByOwner
func (s *ServiceStore) ListByOwner(ctx context.Context, email string) ([]domain.Service, error) {
	return s.find(ctx, bson.M{"userEmail": email})
}

// Create implements store.ServiceStore.Create
func (s *ServiceStore) Create(ctx context.Context, service *domain.Service) (*store.InsertResult, error) {
	service.ID = primitive.NilObjectID

	res, err := s.coll.InsertOne(ctx, service)
	if err != nil {
		return nil, store.NewStoreError("service", "insert", "failed to insert service", MapError(err))
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, store.NewStoreError("service", "insert", fmt.Sprintf("unexpected id type %T", res.InsertedID), store.ErrInvalidID)
	}
	service.ID = id

	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// Update implements store.ServiceStore.Update
func (s *ServiceStore) Update(ctx context.Context, id primitive.ObjectID, patch domain.ServicePatch) (*store.UpdateResult, error) {
	if patch.IsEmpty() {
		return nil, store.NewStoreError("service", "update", "no fields to set", store.ErrInvalidEntity)
	}

	res, err := s.coll.UpdateOne(ctx, byID(id), bson.M{"$set": patch})
	if err != nil {
		return nil, store.NewStoreError("service", "update", "failed to update service", MapError(err))
	}

	return &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete implements store.ServiceStore.Delete
func (s *ServiceStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return nil, store.NewStoreError("service", "delete", "failed to delete service", MapError(err))
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s *ServiceStore) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]domain.Service, error) {
	cursor, err := s.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, store.NewStoreError("service", "find", "failed to query services", MapError(err))
	}

	services := []domain.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, store.NewStoreError("service", "find", "failed to decode services", MapError(err))
	}
	return services, nil
}
