package mocks

import (
	"context"

	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/store"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestifyMockServiceStore is a mock of store.ServiceStore interface for use with testify/mock
type TestifyMockServiceStore struct {
	mock.Mock
}

var _ store.ServiceStore = (*TestifyMockServiceStore)(nil)

// List is a mock implementation of store.ServiceStore.List
func (m *TestifyMockServiceStore) List(ctx context.Context, q store.ServiceQuery) (*store.ServicePage, error) {
	args := m.Called(ctx, q)
	if page, ok := args.Get(0).(*store.ServicePage); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

// Featured is a mock implementation of store.ServiceStore.Featured
func (m *TestifyMockServiceStore) Featured(ctx context.Context, limit int) ([]domain.Service, error) {
	args := m.Called(ctx, limit)
	if services, ok := args.Get(0).([]domain.Service); ok {
		return services, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.ServiceStore.GetByID
func (m *TestifyMockServiceStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if service, ok := args.Get(0).(*domain.Service); ok {
		return service, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByOwner is a mock implementation of store.ServiceStore.ListByOwner
func (m *TestifyMockServiceStore) ListByOwner(ctx context.Context, email string) ([]domain.Service, error) {
	args := m.Called(ctx, email)
	if services, ok := args.Get(0).([]domain.Service); ok {
		return services, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.ServiceStore.Create
func (m *TestifyMockServiceStore) Create(ctx context.Context, service *domain.Service) (*store.InsertResult, error) {
	args := m.Called(ctx, service)
	if res, ok := args.Get(0).(*store.InsertResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.ServiceStore.Update
func (m *TestifyMockServiceStore) Update(ctx context.Context, id primitive.ObjectID, patch domain.ServicePatch) (*store.UpdateResult, error) {
	args := m.Called(ctx, id, patch)
	if res, ok := args.Get(0).(*store.UpdateResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.ServiceStore.Delete
func (m *TestifyMockServiceStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	args := m.Called(ctx, id)
	if res, ok := args.Get(0).(*store.DeleteResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
