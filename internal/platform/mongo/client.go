package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/servicehub/servicehub-api/internal/config"
	"github.com/servicehub/servicehub-api/internal/redact"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	ServicesCollection = "service"
	ReviewsCollection  = "reviews"
	UsersCollection    = "users"
)

// Client owns the driver client and the application database handle.
type Client struct {
	client         *mongo.Client
	db             *mongo.Database
	connectTimeout time.Duration
	logger         *slog.Logger
}

// Connect creates the driver client. The driver connects lazily, so an
// unreachable server does not fail here; use Ping to check reachability.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %s", redact.Error(err))
	}

	return &Client{
		client:         client,
		db:             client.Database(cfg.Name),
		connectTimeout: timeout,
		logger:         logger.With(slog.String("component", "mongo")),
	}, nil
}

// Database returns the application database.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the stores rely on. The unique email
// index is what makes user registration insert-if-absent under concurrency.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ServicesCollection: {
			{Keys: bson.D{{Key: "userEmail", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		ReviewsCollection: {
			{Keys: bson.D{{Key: "serviceId", Value: 1}}},
			{Keys: bson.D{{Key: "userEmail", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		names, err := c.db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		c.logger.Debug("indexes ensured", slog.String("collection", collection), slog.Any("indexes", names))
	}
	return nil
}

// Disconnect closes all pooled connections.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo client: %w", err)
	}
	return nil
}
