package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/servicehub/servicehub-api/internal/config"
	"github.com/servicehub/servicehub-api/internal/platform/mongo"
	"github.com/servicehub/servicehub-api/internal/redact"
)

// indexRetryInterval is the pause between index attempts while the
// database is unreachable.
const indexRetryInterval = 5 * time.Second

// indexer is the part of the database client that prepares indexes.
type indexer interface {
	Ping(ctx context.Context) error
	EnsureIndexes(ctx context.Context) error
}

// setupAppDatabase creates the MongoDB client and prepares indexes. An
// unreachable server is logged but not fatal: the process keeps serving,
// requests fail until the database answers, and /health reports it. Index
// creation is retried in the background until it succeeds.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := prepareIndexes(ctx, client, logger); err != nil {
		logger.Warn("Database indexes not ready, retrying in background; concurrent registrations of one email may both insert until they are",
			"error", redact.Error(err),
			"retry_interval", indexRetryInterval.String())
		go retryIndexes(ctx, client, indexRetryInterval, logger)
		return client, nil
	}
	logger.Info("Database connection established", "database", cfg.Database.Name)

	return client, nil
}

// prepareIndexes pings the database and ensures indexes once.
func prepareIndexes(ctx context.Context, db indexer, logger *slog.Logger) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}
	logger.Debug("database indexes ensured")
	return nil
}

// retryIndexes calls prepareIndexes every interval until it succeeds or ctx
// is canceled. It reports whether the indexes were created.
func retryIndexes(ctx context.Context, db indexer, interval time.Duration, logger *slog.Logger) bool {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}

		err := prepareIndexes(ctx, db, logger)
		if err == nil {
			logger.Info("Database indexes created after retry", "attempts", attempt)
			return true
		}
		logger.Debug("index retry failed", "attempt", attempt, "error", redact.Error(err))
	}
}

// mongoStores builds the MongoDB-backed stores.
func mongoStores(client *mongo.Client, logger *slog.Logger) appStores {
	db := client.Database()
	return appStores{
		services: mongo.NewServiceStore(db, logger),
		reviews:  mongo.NewReviewStore(db, logger),
		users:    mongo.NewUserStore(db, logger),
	}
}
