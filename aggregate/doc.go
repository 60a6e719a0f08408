// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate keeps an item's average rating consistent with its reviews.

# Average

	avg, ok := aggregate.RecomputeAverage([]int{3, 4, 5}) // 4.0, true
	_, ok = aggregate.RecomputeAverage(nil)               // ok == false

An item with no reviews has no average (Item.AverageRating == nil).

# Mutations

AddReview and RemoveReview change an item's review list and recompute its
count and average in the same call:

	aggregate.AddReview(item, review)
	removed, err := aggregate.RemoveReview(item, reviewID, username)

RemoveReview only lets the author delete a review. It returns
ErrReviewNotFound or ErrNotPermitted and leaves the item untouched on
failure. Callers map ErrItemNotFound when the item itself is missing.

# Locking

Read-modify-write on one item must be serialized. Locks hands out one mutex
per item ID:

	unlock := locks.Lock(itemID)
	defer unlock()

The store combines this with an optimistic version check on the item row,
so separate server processes cannot lose an update either.
*/
package aggregate
