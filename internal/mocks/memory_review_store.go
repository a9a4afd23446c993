package mocks

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewStore is an in-memory store.ReviewStore.
type ReviewStore struct {
	mu      sync.Mutex
	reviews []domain.Review

	// Err, when set, is returned by every method.
	Err error
}

var _ store.ReviewStore = (*ReviewStore)(nil)

// NewReviewStore returns a store seeded with reviews.
func NewReviewStore(seed ...domain.Review) *ReviewStore {
	s := &ReviewStore{}
	for _, r := range seed {
		if r.ID.IsZero() {
			r.ID = primitive.NewObjectID()
		}
		s.reviews = append(s.reviews, r)
	}
	return s
}

// Len returns the number of stored reviews.
func (s *ReviewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}

func (s *ReviewStore) ListAll(_ context.Context) ([]domain.Review, error) {
	return s.filter(func(domain.Review) bool { return true })
}

func (s *ReviewStore) ListByService(_ context.Context, serviceID string) ([]domain.Review, error) {
	return s.filter(func(r domain.Review) bool { return r.ServiceID == serviceID })
}

func (s *ReviewStore) ListByOwner(_ context.Context, email string) ([]domain.Review, error) {
	return s.filter(func(r domain.Review) bool { return r.UserEmail == email })
}

func (s *ReviewStore) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	if i := s.indexOf(id); i >= 0 {
		r := s.reviews[i]
		return &r, nil
	}
	return nil, store.ErrReviewNotFound
}

func (s *ReviewStore) Create(_ context.Context, review *domain.Review) (*store.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	review.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, *review)
	return &store.InsertResult{Acknowledged: true, InsertedID: review.ID}, nil
}

func (s *ReviewStore) Update(_ context.Context, id primitive.ObjectID, patch domain.ReviewPatch) (*store.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if patch.IsEmpty() {
		return nil, store.NewStoreError("review", "update", "no fields to set", store.ErrInvalidEntity)
	}

	i := s.indexOf(id)
	if i < 0 {
		return &store.UpdateResult{Acknowledged: true}, nil
	}

	before := s.reviews[i]
	after := before
	patch.Apply(&after)
	s.reviews[i] = after

	res := &store.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if !equalReviews(before, after) {
		res.ModifiedCount = 1
	}
	return res, nil
}

func (s *ReviewStore) Delete(_ context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	i := s.indexOf(id)
	if i < 0 {
		return &store.DeleteResult{Acknowledged: true}, nil
	}
	s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (s *ReviewStore) filter(keep func(domain.Review) bool) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []domain.Review{}
	for _, r := range s.reviews {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReviewStore) indexOf(id primitive.ObjectID) int {
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			return i
		}
	}
	return -1
}

func equalReviews(a, b domain.Review) bool {
	if !equalFloat(a.Rating, b.Rating) || !equalTime(a.ReviewedAt, b.ReviewedAt) {
		return false
	}
	a.Rating, b.Rating = nil, nil
	a.ReviewedAt, b.ReviewedAt = nil, nil
	return reflect.DeepEqual(a, b)
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
