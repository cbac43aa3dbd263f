package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	pkgconfig "github.com/cwi-systems/website/pkg/config"
)

// Settings keys consumed by the secret loader. Case-sensitive.
const (
	// KeySecretName holds the logical secret container identifier: a
	// Secrets Manager secret ID on AWS, a vault name on Azure. Absent means
	// secret loading is skipped.
	KeySecretName = "SECRET_NAME"

	// KeySecretProvider optionally forces the provider ("aws" or "azure")
	// instead of environment detection.
	KeySecretProvider = "SECRET_PROVIDER"
)

// Settings is the application's mutable key/value settings map. The secret
// loader merges fetched entries into it in place; colliding keys are
// overwritten, no namespacing is applied.
type Settings map[string]string

// Get returns the value for key, or "" if absent.
func (s Settings) Get(key string) string {
	return s[key]
}

// Set stores value under key, overwriting any previous value.
func (s Settings) Set(key, value string) {
	s[key] = value
}

// Merge writes every entry into the settings map, overwriting collisions,
// and returns the number of keys written.
func (s Settings) Merge(entries map[string]string) int {
	for key, value := range entries {
		s[key] = value
	}
	return len(entries)
}

// Config holds the runtime configuration for the website service.
type Config struct {
	ServiceName string
	Env         string
	LogLevel    string
	Port        int

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	HTTPBodyLimit    int

	AWSRegion string

	// Settings is seeded from the environment and enriched at startup by
	// the secret loader. See internal/secrets.
	Settings Settings
}

// Load loads configuration from environment variables and optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName:      pkgconfig.GetEnv("SERVICE_NAME", "website"),
		Env:              pkgconfig.GetEnv("ENV", "dev"),
		LogLevel:         pkgconfig.GetEnv("LOG_LEVEL", "info"),
		Port:             pkgconfig.GetEnvInt("PORT", 8080),
		HTTPReadTimeout:  pkgconfig.GetEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout: pkgconfig.GetEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		HTTPIdleTimeout:  pkgconfig.GetEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		HTTPBodyLimit:    pkgconfig.GetEnvInt("HTTP_BODY_LIMIT", 1*1024*1024),
		AWSRegion:        pkgconfig.GetEnv("AWS_REGION", "us-east-2"),
		Settings:         Settings{},
	}

	for _, key := range []string{KeySecretName, KeySecretProvider} {
		if val := os.Getenv(key); val != "" {
			cfg.Settings.Set(key, val)
		}
	}
	return cfg
}
