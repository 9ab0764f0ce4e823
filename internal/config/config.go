package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultHTTPAddr     = ":8080"
	defaultJWTAccessTTL = "24h"
	defaultAppEnv       = "development"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration
}

func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TTL: %w", err)
	}

	return &Config{
		AppEnv:       getEnv("APP_ENV", defaultAppEnv),
		HTTPAddr:     getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL:  dsn,
		JWTSecret:    secret,
		JWTAccessTTL: ttl,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
