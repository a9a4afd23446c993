// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. Every key can be
// overridden through a SERVICEHUB_ prefixed environment variable, e.g.
// SERVICEHUB_AUTH_JWT_SECRET.
package config
