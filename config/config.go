// Package config loads service configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DriverFile     = "file"
	DriverDatabase = "database"
)

type Config struct {
	Listen        string `yaml:"listen"`
	DataDir       string `yaml:"data_dir"`
	StorageDriver string `yaml:"storage_driver"`
	DSN           string `yaml:"dsn"`

	// Base64-encoded HS256 secret for admin session tokens.
	JWTSecret       string `yaml:"jwt_secret"`
	TokenTTLSeconds int64  `yaml:"token_ttl_seconds"`

	GeminiAPIKey string `yaml:"gemini_api_key"`

	// Optional S3 bucket exports are archived to after download.
	ExportBucket string `yaml:"export_bucket"`
}

func defaults() Config {
	return Config{
		Listen:          ":8090",
		DataDir:         "data",
		StorageDriver:   DriverFile,
		TokenTTLSeconds: 8 * 3600,
	}
}

// Load reads path if it exists, then applies env overrides. A missing file
// is not an error; env-only deployments are normal.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	}

	override(&cfg.Listen, "WMS_LISTEN")
	override(&cfg.DataDir, "WMS_DATA_DIR")
	override(&cfg.StorageDriver, "WMS_STORAGE_DRIVER")
	override(&cfg.DSN, "DSN")
	override(&cfg.JWTSecret, "WMS_JWT_SECRET")
	override(&cfg.GeminiAPIKey, "GEMINI_API_KEY")
	override(&cfg.ExportBucket, "WMS_EXPORT_BUCKET")
	if v := os.Getenv("WMS_TOKEN_TTL_SECONDS"); v != "" {
		ttl, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid WMS_TOKEN_TTL_SECONDS: %q", v)
		}
		cfg.TokenTTLSeconds = ttl
	}

	if cfg.StorageDriver != DriverFile && cfg.StorageDriver != DriverDatabase {
		return cfg, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if cfg.StorageDriver == DriverDatabase && cfg.DSN == "" {
		return cfg, fmt.Errorf("storage driver %q requires a DSN", DriverDatabase)
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("jwt secret is required")
	}

	return cfg, nil
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
