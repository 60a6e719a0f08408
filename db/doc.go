// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and applies the schema.

# Connecting

Open picks the driver from the configured type and pings before returning:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite, with foreign keys on and a 5s busy timeout,
    limited to one open connection

# Migrations

Migrate runs the embedded goose migrations from package migrations:

	if err := db.Migrate(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times. On PostgreSQL a session advisory lock keeps
concurrent instances from migrating at the same time.

# Tables

  - item: Name, category, description and the maintained aggregate
    (average_rating, review_count) plus a version used for optimistic
    concurrency
  - review: Star rating, text, the stored judgement and abuse-tracking
    columns (ip_hash, user_agent)

# Relationships

	item 1──* review

review.item_id uses ON DELETE CASCADE. Reviews keep insertion order through
review.seq, which is the item's version at the time the review was added.

# Indexes

  - item.name
  - review.(item_id, seq)
  - review.created_at
*/
package db
