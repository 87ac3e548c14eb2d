// Package config loads server configuration from environment variables.
package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the token signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyAddr is the environment variable holding the listen address.
	EnvKeyAddr = "ADDR"
	// EnvKeyTokenTTL is the environment variable holding the token lifetime.
	EnvKeyTokenTTL = "TOKEN_TTL"

	defaultAddr     = ":8080"
	defaultTokenTTL = 24 * time.Hour
)

// ErrMissingJWTSecret is returned when JWT_SECRET is not set.
// The server must refuse to start without a signing secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Config holds all server settings.
type Config struct {
	Addr      string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads the configuration from the environment.
// JWT_SECRET is mandatory; ADDR and TOKEN_TTL fall back to defaults.
func Load() (*Config, error) {
	secret := strings.TrimSpace(os.Getenv(EnvKeyJWTSecret))
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	cfg := &Config{
		Addr:      getEnv(EnvKeyAddr, defaultAddr),
		JWTSecret: secret,
		TokenTTL:  defaultTokenTTL,
	}

	if raw := strings.TrimSpace(os.Getenv(EnvKeyTokenTTL)); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, errors.New("TOKEN_TTL must be a positive duration")
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}

// getEnv returns the trimmed value of key, or fallback when unset or empty.
func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
