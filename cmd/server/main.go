// Package main implements the entry point for the ServiceHub API server,
// which stores marketplace service listings, reviews and user profiles in
// MongoDB and serves them over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("servicehub-api: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, connects to MongoDB and
// serves until ctx is canceled.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, mongoStores(db, logger), db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	app.closers = append(app.closers, db.Disconnect)

	return app.Run(ctx)
}
