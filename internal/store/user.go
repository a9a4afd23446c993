package store

import (
	"context"

	"github.com/servicehub/servicehub-api/internal/domain"
)

// UserStore defines the interface for user profile persistence.
type UserStore interface {
	// Register inserts the user unless one with the same email exists.
	// The check and insert happen atomically.
	Register(ctx context.Context, user *domain.User) (*RegisterResult, error)

	// List returns every registered user.
	List(ctx context.Context) ([]domain.User, error)
}
