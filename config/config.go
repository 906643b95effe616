// Package config holds the Love Fold configuration, its YAML loader, the
// environment overrides and the version table.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = "love_fold.yaml"

// Config is the full runtime configuration.
type Config struct {
	Predictor PredictorConfig
	Cache     CacheConfig
	Server    ServerConfig
	Log       LogConfig
	Defaults  DefaultsConfig
}

type PredictorConfig struct {
	URL     string
	Timeout time.Duration
	Retries int
	Backoff time.Duration // multiplied by the attempt number
}

type CacheConfig struct {
	Enabled bool
	Dir     string
	TTL     time.Duration
}

type ServerConfig struct {
	Addr string
	Mode string // gin mode: debug, release or test
}

type LogConfig struct {
	Level  string
	Format string // text or json
	Path   string // empty logs to stderr
}

type DefaultsConfig struct {
	Strategy string
}

// DefaultConfig provides working defaults for every field.
func DefaultConfig() Config {
	return Config{
		Predictor: PredictorConfig{
			URL:     "https://api.esmatlas.com/foldSequence/v1/pdb/",
			Timeout: 120 * time.Second,
			Retries: 3,
			Backoff: time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCacheDir(),
			TTL:     7 * 24 * time.Hour,
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Defaults: DefaultsConfig{
			Strategy: "anchor",
		},
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "love_fold")
	}
	return filepath.Join(".cache", "love_fold")
}
