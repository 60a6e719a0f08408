// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported values for Config.DatabaseType
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port            int    `env:"PORT" envDefault:"3318"`
	DatabaseURL     string `env:"DATABASE_URL"`
	DatabaseType    string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	JWTSecret       string `env:"JWT_SECRET"`
	LexiconPath     string `env:"LEXICON_PATH"`
	ReviewRateLimit int    `env:"REVIEW_RATE_LIMIT" envDefault:"30"`
	AllowedOrigin   string `env:"ALLOWED_ORIGIN" envDefault:"*"`
}

// ParseFlags loads .env and the environment, then applies CLI overrides
func ParseFlags(args []string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("ratemyanything", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Bearer token signing secret (prefer env)")

	fs.StringVar(&cfg.LexiconPath, "lexicon", cfg.LexiconPath, "YAML file replacing the built-in word lists")
	fs.IntVar(&cfg.ReviewRateLimit, "rate-limit", cfg.ReviewRateLimit, "Reviews per minute per client (0 disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first missing or out-of-range setting
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if c.DatabaseType != DatabaseSQLite && c.DatabaseType != DatabasePostgres {
		return fmt.Errorf("unsupported database type %q (want sqlite or postgres)", c.DatabaseType)
	}

	// Secrets - MUST be provided
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}

	if c.ReviewRateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}
	return nil
}
