package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/servicehub/servicehub-api/internal/api"
	"github.com/servicehub/servicehub-api/internal/config"
	"github.com/servicehub/servicehub-api/internal/service/auth"
	"github.com/servicehub/servicehub-api/internal/store"
)

// appStores groups the persistence dependencies.
type appStores struct {
	services store.ServiceStore
	reviews  store.ReviewStore
	users    store.UserStore
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	stores appStores
	db     api.Pinger

	jwtService auth.JWTService
	cookies    auth.CookiePolicy

	// closers run in order during cleanup.
	closers []func(context.Context) error
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, stores appStores, db api.Pinger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		stores: stores,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	app.cookies = auth.NewCookiePolicy(cfg.Auth, cfg.Server)

	logger.Info("JWT authentication service initialized",
		"token_lifetime_days", cfg.Auth.TokenLifetimeDays,
		"cookie_secure", app.cookies.Secure)

	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, closeFn := range app.closers {
		if err := closeFn(ctx); err != nil {
			app.logger.Error("Error closing resource", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
