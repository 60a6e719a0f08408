// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package migrations embeds the goose SQL migrations.
//
// Files are named NNNNN_description.sql and must stay portable between
// PostgreSQL and SQLite: no NOW() defaults, no JSONB, no SERIAL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
