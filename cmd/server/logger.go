package main

import (
	"fmt"
	"log/slog"

	"github.com/servicehub/servicehub-api/internal/config"
	"github.com/servicehub/servicehub-api/internal/platform/logger"
)

// setupAppLogger configures the default logger from the server settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}
