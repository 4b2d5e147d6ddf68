// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the inventory API server.
type Config struct {
	// HTTP server settings
	ListenAddr string

	// Data file locations
	InventoryFile string
	CertsFile     string

	// Cache configuration
	Cache CacheConfig

	// Logging
	LogLevel string
}

// CacheConfig holds response cache configuration.
type CacheConfig struct {
	// RedisAddr selects the Redis backend when non-empty; the in-memory
	// cache is used otherwise.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// Load creates a new Config with values from environment variables or defaults.
func Load() *Config {
	cfg := &Config{
		ListenAddr:    ":8080",
		InventoryFile: "parsed_inventory.json",
		CertsFile:     "combined_certs.json",
		LogLevel:      "info",

		Cache: CacheConfig{
			TTL: 60 * time.Second,
		},
	}

	if env := os.Getenv("DNSAUDIT_LISTEN_ADDR"); env != "" {
		cfg.ListenAddr = env
	}

	if env := os.Getenv("DNSAUDIT_INVENTORY_FILE"); env != "" {
		cfg.InventoryFile = env
	}

	if env := os.Getenv("DNSAUDIT_CERTS_FILE"); env != "" {
		cfg.CertsFile = env
	}

	if env := os.Getenv("DNSAUDIT_REDIS_ADDR"); env != "" {
		cfg.Cache.RedisAddr = env
	}

	if env := os.Getenv("DNSAUDIT_REDIS_PASSWORD"); env != "" {
		cfg.Cache.RedisPassword = env
	}

	if env := os.Getenv("DNSAUDIT_REDIS_DB"); env != "" {
		if val, err := strconv.Atoi(env); err == nil && val >= 0 {
			cfg.Cache.RedisDB = val
		}
	}

	if env := os.Getenv("DNSAUDIT_CACHE_TTL"); env != "" {
		if val, err := time.ParseDuration(env); err == nil && val > 0 {
			cfg.Cache.TTL = val
		}
	}

	if env := os.Getenv("DNSAUDIT_LOG_LEVEL"); env != "" {
		cfg.LogLevel = env
	}

	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return &ValidationError{Field: "ListenAddr", Message: "cannot be empty"}
	}

	if c.InventoryFile == "" {
		return &ValidationError{Field: "InventoryFile", Message: "cannot be empty"}
	}

	if c.CertsFile == "" {
		return &ValidationError{Field: "CertsFile", Message: "cannot be empty"}
	}

	if c.Cache.TTL <= 0 {
		return &ValidationError{Field: "Cache.TTL", Message: "must be greater than 0"}
	}

	return nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s %s", e.Field, e.Message)
}
