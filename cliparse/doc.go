// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are read in three layers. A .env file in the working directory is
loaded first (missing is fine), then the process environment is parsed into
Config, then CLI flags override whatever the environment set.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - JWTSecret: Bearer token signing secret (required)
  - LexiconPath: YAML word lists replacing the built-in ones (optional)
  - ReviewRateLimit: Reviews per minute per client, 0 disables (default: 30)
  - AllowedOrigin: CORS Access-Control-Allow-Origin value (default: *)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-jwt-secret   Token signing secret
	-lexicon      Lexicon YAML path
	-rate-limit   Reviews per minute per client

# Environment Variables

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	JWT_SECRET        → -jwt-secret
	LEXICON_PATH      → -lexicon
	REVIEW_RATE_LIMIT → -rate-limit
	ALLOWED_ORIGIN    (env only)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is not sqlite or postgres
  - JWT_SECRET is missing
  - the port or rate limit is out of range
*/
package cliparse
