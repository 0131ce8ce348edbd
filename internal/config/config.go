// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

// Package config loads service configuration with layered sources:
// built-in defaults, an optional YAML file, then environment variables.
// Precedence: ENV > file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ciconnect/recommender/internal/recommend"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/ciconnect-recommender/config.yaml",
	"/etc/ciconnect-recommender/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config is the root service configuration.
type Config struct {
	// Server configures the HTTP listener and API policies.
	Server ServerConfig `koanf:"server"`

	// Mongo configures the MongoDB connection.
	Mongo MongoConfig `koanf:"mongo"`

	// Logging configures the global logger.
	Logging LoggingConfig `koanf:"logging"`

	// Recommend configures the recommendation core.
	Recommend recommend.Config `koanf:"recommend"`
}

// ServerConfig configures the HTTP listener and API policies.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0.
	Host string `koanf:"host"`

	// Port is the listen port. Default: 5001.
	Port int `koanf:"port"`

	// APIKey authenticates callers of /api/v1. Empty disables auth
	// (development only).
	APIKey string `koanf:"api_key"`

	// RateLimitRequests is the per-IP request budget per minute.
	// Default: 100. Zero disables rate limiting.
	RateLimitRequests int `koanf:"rate_limit_requests"`

	// CORSOrigins lists allowed CORS origins. Default: ["*"].
	CORSOrigins []string `koanf:"cors_origins"`

	// ReadTimeout bounds request reads. Default: 15s.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds response writes. Default: 30s.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// RequestTimeout bounds a single recommendation computation.
	// Default: 10s.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 15s.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	// Default: mongodb://localhost:27017.
	URI string `koanf:"uri"`

	// Database is the database name. Default: ci-connect.
	Database string `koanf:"database"`

	// ConnectTimeout bounds the startup connection attempt.
	// Default: 10s.
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is the minimum log level. Default: info.
	Level string `koanf:"level"`

	// Format is json or console. Default: json.
	Format string `koanf:"format"`
}

// defaultConfig returns a Config with all defaults applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              5001,
			APIKey:            "",
			RateLimitRequests: 100,
			CORSOrigins:       []string{"*"},
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			RequestTimeout:    10 * time.Second,
			ShutdownTimeout:   15 * time.Second,
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "ci-connect",
			ConnectTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Recommend: *recommend.DefaultConfig(),
	}
}

// Load reads the configuration from defaults, an optional YAML file,
// and environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Layer 2: optional config file
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.RateLimitRequests < 0 {
		return fmt.Errorf("server.rate_limit_requests must be non-negative, got %d", c.Server.RateLimitRequests)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive, got %v", c.Server.RequestTimeout)
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri must not be empty")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo.database must not be empty")
	}
	return c.Recommend.Validate()
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via
// environment variables.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated env strings to slices for
// the known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config
// paths. Unknown variables are ignored so unrelated environment noise
// cannot leak into the configuration.
var envMappings = map[string]string{
	// Server
	"http_host":           "server.host",
	"http_port":           "server.port",
	"api_key":             "server.api_key",
	"rate_limit_requests": "server.rate_limit_requests",
	"cors_origins":        "server.cors_origins",
	"http_read_timeout":   "server.read_timeout",
	"http_write_timeout":  "server.write_timeout",
	"request_timeout":     "server.request_timeout",
	"shutdown_timeout":    "server.shutdown_timeout",

	// Mongo
	"mongodb_uri":           "mongo.uri",
	"mongodb_database":      "mongo.database",
	"mongo_connect_timeout": "mongo.connect_timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",

	// Recommendation weights and parameters
	"recommend_content_weight":       "recommend.weights.content",
	"recommend_collaborative_weight": "recommend.weights.collaborative",
	"recommend_interests_weight":     "recommend.weights.interests",
	"recommend_skills_weight":        "recommend.weights.skills",
	"recommend_max_features":         "recommend.content.max_features",
	"recommend_svd_components":       "recommend.latent.components",
	"recommend_similar_users":        "recommend.latent.similar_users",
	"recommend_match_min_score":      "recommend.matching.min_score",
	"trends_window_days":             "recommend.trends.window_days",
}

// envTransformFunc maps environment variable names to koanf paths.
// Variables without a mapping are dropped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
