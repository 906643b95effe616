package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"love_fold_go/seq_encoder"
)

// Environment overrides, applied after the YAML file.
const (
	EnvPredictorURL     = "LOVE_FOLD_PREDICTOR_URL"
	EnvPredictorTimeout = "LOVE_FOLD_PREDICTOR_TIMEOUT"
	EnvPredictorRetries = "LOVE_FOLD_PREDICTOR_RETRIES"
	EnvCacheDir         = "LOVE_FOLD_CACHE_DIR"
	EnvCacheEnabled     = "LOVE_FOLD_CACHE_ENABLED"
	EnvServerAddr       = "LOVE_FOLD_SERVER_ADDR"
	EnvLogLevel         = "LOVE_FOLD_LOG_LEVEL"
	EnvStrategy         = "LOVE_FOLD_STRATEGY"
)

// Load builds the configuration from defaults, the YAML file at path, a
// .env file in the working directory, and the process environment, in that
// order of increasing precedence.
//
// An empty path tries DefaultFileName and silently skips it when absent; an
// explicit path that does not exist is a KindNotFound error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = apply(cfg, path, b); err != nil {
			return Config{}, err
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file is fine
	default:
		return Config{}, &OpError{Op: "config.load", Kind: KindNotFound, Path: path, Err: err}
	}

	_ = godotenv.Load() // .env is optional and never overrides real env vars

	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, &OpError{Op: "config.validate", Kind: KindInvalidConfig, Path: path, Err: err}
	}
	return cfg, nil
}

// Parse applies YAML bytes on top of DefaultConfig without touching the
// environment.
func Parse(b []byte) (Config, error) {
	cfg, err := apply(DefaultConfig(), "", b)
	if err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, &OpError{Op: "config.validate", Kind: KindInvalidConfig, Err: err}
	}
	return cfg, nil
}

func apply(cfg Config, path string, b []byte) (Config, error) {
	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
	}
	if err := mapYAML(&cfg, dto); err != nil {
		return Config{}, &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
	}
	return cfg, nil
}

func mapYAML(cfg *Config, dto YAMLConfig) error {
	if p := dto.Predictor; p != nil {
		setString(&cfg.Predictor.URL, p.URL)
		if p.Retries != nil {
			cfg.Predictor.Retries = *p.Retries
		}
		if err := setDuration(&cfg.Predictor.Timeout, p.Timeout, "predictor.timeout"); err != nil {
			return err
		}
		if err := setDuration(&cfg.Predictor.Backoff, p.Backoff, "predictor.backoff"); err != nil {
			return err
		}
	}
	if c := dto.Cache; c != nil {
		if c.Enabled != nil {
			cfg.Cache.Enabled = *c.Enabled
		}
		setString(&cfg.Cache.Dir, c.Dir)
		if err := setDuration(&cfg.Cache.TTL, c.TTL, "cache.ttl"); err != nil {
			return err
		}
	}
	if s := dto.Server; s != nil {
		setString(&cfg.Server.Addr, s.Addr)
		setString(&cfg.Server.Mode, s.Mode)
	}
	if l := dto.Log; l != nil {
		setString(&cfg.Log.Level, l.Level)
		setString(&cfg.Log.Format, l.Format)
		setString(&cfg.Log.Path, l.Path)
	}
	if d := dto.Defaults; d != nil {
		setString(&cfg.Defaults.Strategy, d.Strategy)
	}
	return nil
}

// ApplyEnv overrides cfg from getenv. Unset or empty variables are ignored.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvPredictorURL); v != "" {
		cfg.Predictor.URL = v
	}
	if v := getenv(EnvPredictorTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &OpError{Op: "config.env", Kind: KindInvalidConfig, Err: fmt.Errorf("%s: %w", EnvPredictorTimeout, err)}
		}
		cfg.Predictor.Timeout = d
	}
	if v := getenv(EnvPredictorRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &OpError{Op: "config.env", Kind: KindInvalidConfig, Err: fmt.Errorf("%s: %w", EnvPredictorRetries, err)}
		}
		cfg.Predictor.Retries = n
	}
	if v := getenv(EnvCacheDir); v != "" {
		cfg.Cache.Dir = v
	}
	if v := getenv(EnvCacheEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &OpError{Op: "config.env", Kind: KindInvalidConfig, Err: fmt.Errorf("%s: %w", EnvCacheEnabled, err)}
		}
		cfg.Cache.Enabled = b
	}
	if v := getenv(EnvServerAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvStrategy); v != "" {
		cfg.Defaults.Strategy = v
	}
	return nil
}

// Validate checks field ranges and enumerations.
func Validate(cfg Config) error {
	var problems []string
	if strings.TrimSpace(cfg.Predictor.URL) == "" {
		problems = append(problems, "predictor.url is required")
	}
	if cfg.Predictor.Timeout <= 0 {
		problems = append(problems, "predictor.timeout must be positive")
	}
	if cfg.Predictor.Retries < 1 {
		problems = append(problems, "predictor.retries must be at least 1")
	}
	if cfg.Predictor.Backoff < 0 {
		problems = append(problems, "predictor.backoff must not be negative")
	}
	if cfg.Cache.Enabled && strings.TrimSpace(cfg.Cache.Dir) == "" {
		problems = append(problems, "cache.dir is required when the cache is enabled")
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not one of text, json", cfg.Log.Format))
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("server.mode %q is not one of debug, release, test", cfg.Server.Mode))
	}
	if _, err := seq_encoder.ParseStrategy(cfg.Defaults.Strategy); err != nil {
		problems = append(problems, "defaults.strategy: "+err.Error())
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *string, field string) error {
	if src == nil {
		return nil
	}
	d, err := time.ParseDuration(*src)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = d
	return nil
}
