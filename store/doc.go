// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists items and reviews.

Every review mutation goes through one path: lock the item in process, open
a transaction, load the item with its reviews, apply the change through
package aggregate, then write the new average with

	UPDATE item SET ... version = version + 1 WHERE id = $3 AND version = $4

If no row matches, another writer got there first: the transaction is
rolled back and the whole read-modify-write is retried, up to
maxAggregateRetries times, after which aggregate.ErrConflict is returned.

Review order is the order of review.seq, which is the item version the
review was inserted at.

Queries use $N placeholders and run unchanged on PostgreSQL and SQLite.

ListItems matches against item.name_folded, a Unicode case-folded copy of
the name written by CreateItem, since SQLite's LOWER only folds ASCII.
*/
package store
