package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8080"
	defaultDatabaseURL  = "palace.db"
	defaultRedisAddr    = "localhost:6379"
	defaultJWTTTL       = "24h"
	defaultSessionTTL   = "24h"
	defaultPaymentDelay = "2s"
)

type Config struct {
	Addr        string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTTTL    time.Duration

	// WizardSessionTTL bounds how long an abandoned modal session lives
	// in Redis before it expires on its own.
	WizardSessionTTL time.Duration

	// PaymentDelay is the simulated gateway latency on confirm.
	PaymentDelay time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:          getenv("ADDR", defaultAddr),
		DatabaseURL:   getenv("DATABASE_URL", defaultDatabaseURL),
		RedisAddr:     getenv("REDIS_ADDR", defaultRedisAddr),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = n
	}

	var err error
	if cfg.JWTTTL, err = parseDuration("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.WizardSessionTTL, err = parseDuration("WIZARD_SESSION_TTL", defaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.PaymentDelay, err = parseDuration("PAYMENT_DELAY", defaultPaymentDelay); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	v := getenv(key, fallback)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
