// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, cache, logging and the dashboard

package config

import (
	"errors"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Storage contains the record store configuration
	Storage StorageConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig

	// Dashboard contains ranking pipeline settings
	Dashboard DashboardConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the sustained number of requests per second allowed per client IP
	RateLimit float64

	// RateBurst is the number of requests a client may burst above RateLimit
	RateBurst int

	// AllowedOrigins lists the CORS origins, "*" allows all
	AllowedOrigins []string

	// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For and
	// X-Real-IP headers are believed. Empty means the peer address is the client.
	TrustedProxies []string
}

// StorageConfig holds record store configuration
type StorageConfig struct {
	// Type specifies the store backend (sqlite/memory)
	Type string

	// SQLitePath is the database file used by the sqlite backend
	SQLitePath string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// ListTTL is how long the record listing may be served from cache
	ListTTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is a logrus level name (debug, info, warn, error)
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, receives the log output with size-based rotation
	File string
}

// DashboardConfig holds settings of the ranking pipeline
type DashboardConfig struct {
	// Timezone names the location used to bucket submissions by calendar day
	Timezone string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "5000"),
			RateLimit:      getEnvAsFloatOrDefault("RATE_LIMIT", 10),
			RateBurst:      getEnvAsIntOrDefault("RATE_BURST", 20),
			AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
			TrustedProxies: splitList(getEnvOrDefault("TRUSTED_PROXIES", "")),
		},
		Storage: StorageConfig{
			Type:       getEnvOrDefault("STORAGE_TYPE", "sqlite"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "searchpilot.db"),
		},
		Cache: CacheConfig{
			Type:    getEnvOrDefault("CACHE_TYPE", "memory"),
			ListTTL: time.Duration(getEnvAsIntOrDefault("LIST_CACHE_TTL", 30)) * time.Second,
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Dashboard: DashboardConfig{
			Timezone: getEnvOrDefault("DASHBOARD_TIMEZONE", "UTC"),
		},
	}

	return cfg, nil
}

// Location resolves the dashboard timezone
func (c DashboardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		return errors.New("rate limit settings cannot be negative")
	}

	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return errors.New("trusted proxies must be IP addresses or CIDR ranges")
			}
		}
	}

	if c.Storage.Type != "sqlite" && c.Storage.Type != "memory" {
		return errors.New("storage type must be 'sqlite' or 'memory'")
	}

	if c.Storage.Type == "sqlite" && c.Storage.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite storage")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	if _, err := c.Dashboard.Location(); err != nil {
		return errors.New("dashboard timezone is not a known location")
	}

	return nil
}
