package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix shared by every configuration environment variable.
const EnvPrefix = "SERVICEHUB"

// defaults lists every known key. Viper only unmarshals env-backed keys it
// already knows about, so required keys get an empty default too.
var defaults = map[string]interface{}{
	"server.port":                      4000,
	"server.log_level":                 "info",
	"server.mode":                      ModeDevelopment,
	"server.allowed_origins":           []string{"http://localhost:5173"},
	"database.uri":                     "",
	"database.user":                    "",
	"database.password":                "",
	"database.host":                    "",
	"database.name":                    "serviceDB",
	"database.connect_timeout_seconds": 10,
	"auth.jwt_secret":                  "",
	"auth.token_lifetime_days":         365,
	"auth.cookie_name":                 "token",
}

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from the config file. Returns a populated Config or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Comma separated origins from the environment arrive as a single item.
	cfg.Server.AllowedOrigins = splitOrigins(cfg.Server.AllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}
