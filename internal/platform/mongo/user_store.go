package mongo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserStore implements store.UserStore on the users collection.
type UserStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore backed by db.
func NewUserStore(db *mongo.Database, logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		coll:   db.Collection(UsersCollection),
		logger: logger.With(slog.String("store", "user")),
	}
}

// Register implements store.UserStore.Register with a single upsert, so
// two concurrent registrations of one email cannot both insert. The unique
// email index turns the rare upsert collision into a duplicate-key error,
// which is reported as an existing user.
func (s *UserStore) Register(ctx context.Context, user *domain.User) (*store.RegisterResult, error) {
	user.ID = primitive.NilObjectID

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": user},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			return existingUser(), nil
		}
		return nil, store.NewStoreError("user", "register", "failed to upsert user", mapped)
	}

	if res.UpsertedCount == 0 {
		return existingUser(), nil
	}

	id, ok := res.UpsertedID.(primitive.ObjectID)
	if !ok {
		return nil, store.NewStoreError("user", "register", "unexpected upserted id type", store.ErrInvalidID)
	}
	user.ID = id

	s.logger.Debug("user registered", slog.String("user_id", id.Hex()))
	return &store.RegisterResult{Acknowledged: true, InsertedID: &id}, nil
}

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, store.NewStoreError("user", "find", "failed to query users", MapError(err))
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, store.NewStoreError("user", "find", "failed to decode users", MapError(err))
	}
	return users, nil
}

func existingUser() *store.RegisterResult {
	return &store.RegisterResult{
		Acknowledged: true,
		Existing:     true,
		Message:      "user already exists",
	}
}
