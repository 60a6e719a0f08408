// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the RateMyAnything API server.

RateMyAnything lets people rate anything from 1 to 5 stars and write a
review. Every review gets a satirical judgement (a category such as HATER or
EMOJI LORD, a flavor text and a few tags) computed from simple signals in
the text, and every item keeps an average rating that stays consistent while
reviews are added and deleted concurrently.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=ratemyanything.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -jwt-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): Bearer token signing secret

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LEXICON_PATH (-lexicon): YAML word lists and flavor text
  - REVIEW_RATE_LIMIT (-rate-limit): Reviews per minute per client (default: 30)
  - ALLOWED_ORIGIN: CORS origin (default: *)

A .env file in the working directory is read first.

# Architecture

  - judgement: Signal extraction, classification and flavor text
  - aggregate: Average rating maintenance and per-item locks
  - store: Item and review persistence with optimistic retries
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, CORS, bearer tokens, rate limiting, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types
  - auth: IDs, tokens, IP hashing
  - db, migrations: Connection and goose migrations
  - cliparse: Configuration parsing
  - cmd/rmactl: Operator CLI (judge, token, lexicon)

See package documentation for each component.
*/
package main
