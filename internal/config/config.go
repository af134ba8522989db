package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort       = "8080"
	defaultDSN        = "./skillswap.sqlite"
	defaultJWTTTL     = "24h"
	defaultUploadsDir = "./uploads"
	defaultStaticBase = "/static/uploads"
)

// Config is the process runtime configuration, read from the environment
// with development defaults. JWT_SECRET has no default: startup fails
// without it.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// Media storage. "local" unless STORAGE_BACKEND=s3.
	StorageBackend string
	UploadsDir     string
	StaticBase     string

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
	S3KeyPrefix string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", "local")),
		UploadsDir:     getEnv("UPLOADS_DIR", defaultUploadsDir),
		StaticBase:     getEnv("STATIC_BASE", defaultStaticBase),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3Region:       os.Getenv("S3_REGION"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:    os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3PublicURL:    os.Getenv("S3_PUBLIC_URL"),
		S3KeyPrefix:    getEnv("S3_KEY_PREFIX", "skillswap/media"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	if cfg.StorageBackend != "local" && cfg.StorageBackend != "s3" {
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
