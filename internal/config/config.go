package config

import (
	"fmt"
	"net/url"
)

// Deployment modes recognised by ServerConfig.Mode.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Mode switches cookie attributes: production cookies are Secure and
	// SameSite=None so the frontend can live on another site.
	Mode           string   `mapstructure:"mode"            validate:"required,oneof=development production"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// IsProduction reports whether the server runs in production mode.
func (c ServerConfig) IsProduction() bool {
	return c.Mode == ModeProduction
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// URI is the full MongoDB connection string. When empty it is assembled
	// from User, Password and Host.
	URI                   string `mapstructure:"uri"                     validate:"required_without=Host"`
	User                  string `mapstructure:"user"`
	Password              string `mapstructure:"password"`
	Host                  string `mapstructure:"host"                    validate:"required_without=URI"`
	Name                  string `mapstructure:"name"                    validate:"required"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds" validate:"gt=0"`
}

// ConnectionURI returns the MongoDB connection string, building an SRV URI
// from the credential parts when no explicit URI is configured.
func (c DatabaseConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		Host:     c.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	return u.String()
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"          validate:"required,min=32"`
	TokenLifetimeDays int    `mapstructure:"token_lifetime_days" validate:"required,gt=0,lte=3650"`
	CookieName        string `mapstructure:"cookie_name"         validate:"required"`
}

// String hides credentials when a config value ends up in a log line.
func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{name=%s, uri_present=%t, host=%s}", c.Name, c.URI != "", c.Host)
}
