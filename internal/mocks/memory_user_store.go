package mocks

import (
	"context"
	"sync"

	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is an in-memory store.UserStore. Registration checks and
// inserts under one lock, matching the atomic upsert of the real store.
type UserStore struct {
	mu    sync.Mutex
	users []domain.User

	// Err, when set, is returned by every method.
	Err error
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore returns an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Len returns the number of registered users.
func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *UserStore) Register(_ context.Context, user *domain.User) (*store.RegisterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, u := range s.users {
		if u.Email == user.Email {
			return &store.RegisterResult{Acknowledged: true, Existing: true, Message: "user already exists"}, nil
		}
	}

	id := primitive.NewObjectID()
	user.ID = id
	s.users = append(s.users, *user)
	return &store.RegisterResult{Acknowledged: true, InsertedID: &id}, nil
}

func (s *UserStore) List(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}
