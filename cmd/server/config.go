package main

import (
	"fmt"
	"log/slog"

	"github.com/servicehub/servicehub-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"mode", cfg.Server.Mode,
		"database", cfg.Database.String())

	return cfg, nil
}
