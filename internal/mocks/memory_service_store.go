package mocks

import (
	"context"
	"reflect"
	"sync"

	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceStore is an in-memory store.ServiceStore. Documents are kept in
// insertion order, which is also identifier order.
type ServiceStore struct {
	mu       sync.Mutex
	services []domain.Service

	// Err, when set, is returned by every method.
	Err error
}

var _ store.ServiceStore = (*ServiceStore)(nil)

// NewServiceStore returns a store seeded with services. Seeds without an
// identifier get a fresh one.
func NewServiceStore(seed ...domain.Service) *ServiceStore {
	s := &ServiceStore{}
	for _, svc := range seed {
		if svc.ID.IsZero() {
			svc.ID = primitive.NewObjectID()
		}
		s.services = append(s.services, svc)
	}
	return s
}

// Len returns the number of stored services.
func (s *ServiceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.services)
}

func (s *ServiceStore) List(_ context.Context, q store.ServiceQuery) (*store.ServicePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	q = q.WithDefaults()
	var matched []domain.Service
	for _, svc := range s.services {
		if q.Matches(svc) {
			matched = append(matched, svc)
		}
	}

	total := int64(len(matched))
	start := q.Skip()
	if start > total {
		start = total
	}
	end := start + int64(q.Limit)
	if end > total {
		end = total
	}

	page := make([]domain.Service, end-start)
	copy(page, matched[start:end])
	return store.NewServicePage(page, total, q), nil
}

func (s *ServiceStore) Featured(_ context.Context, limit int) ([]domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []domain.Service{}
	for i := len(s.services) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.services[i])
	}
	return out, nil
}

func (s *ServiceStore) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	if i := s.indexOf(id); i >= 0 {
		svc := s.services[i]
		return &svc, nil
	}
	return nil, store.ErrServiceNotFound
}

func (s *ServiceStore) ListByOwner(_ context.Context, email string) ([]domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []domain.Service{}
	for _, svc := range s.services {
		if svc.UserEmail == email {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (s *ServiceStore) Create(_ context.Context, service *domain.Service) (*store.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	service.ID = primitive.NewObjectID()
	s.services = append(s.services, *service)
	return &store.InsertResult{Acknowledged: true, InsertedID: service.ID}, nil
}

func (s *ServiceStore) Update(_ context.Context, id primitive.ObjectID, patch domain.ServicePatch) (*store.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if patch.IsEmpty() {
		return nil, store.NewStoreError("service", "update", "no fields to set", store.ErrInvalidEntity)
	}

	i := s.indexOf(id)
	if i < 0 {
		return &store.UpdateResult{Acknowledged: true}, nil
	}

	before := s.services[i]
	after := before
	patch.Apply(&after)
	s.services[i] = after

	res := &store.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if !equalServices(before, after) {
		res.ModifiedCount = 1
	}
	return res, nil
}

func (s *ServiceStore) Delete(_ context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	i := s.indexOf(id)
	if i < 0 {
		return &store.DeleteResult{Acknowledged: true}, nil
	}
	s.services = append(s.services[:i], s.services[i+1:]...)
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (s *ServiceStore) indexOf(id primitive.ObjectID) int {
	for i := range s.services {
		if s.services[i].ID == id {
			return i
		}
	}
	return -1
}

func equalServices(a, b domain.Service) bool {
	if !equalFloat(a.Price, b.Price) || !equalTime(a.AddedAt, b.AddedAt) {
		return false
	}
	a.Price, b.Price = nil, nil
	a.AddedAt, b.AddedAt = nil, nil
	return reflect.DeepEqual(a, b)
}
