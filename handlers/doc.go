// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the RateMyAnything API.

# Handler Types

Each handler is a struct with its dependencies:

  - ItemHandler: Item creation, lookup and search
  - ReviewHandler: Adding and deleting reviews, the recent review feed
  - JudgeHandler: Judgement preview without storing anything
  - HealthHandler: Liveness with a database check

Handlers are created via constructor functions:

	itemHandler := handlers.NewItemHandler(s)
	reviewHandler := handlers.NewReviewHandler(s, engine, cfg)

# Reviews

	POST   /items/{id}/review                  → AddReview (returns the updated item)
	DELETE /items/{itemId}/review/{reviewId}   → DeleteReview (author only)
	GET    /reviews?limit=                     → RecentReviews

AddReview validates the rating (1-5) and text, runs the judgement engine,
and hands the review to the store, which updates the item's average in the
same transaction. DeleteReview expects middleware.RequireUser in front of it
and answers 403 when the token's username is not the author.

# Error Mapping

	aggregate.ErrItemNotFound   → 404 Item not found
	aggregate.ErrReviewNotFound → 404 Review not found
	aggregate.ErrNotPermitted   → 403 Not allowed
	aggregate.ErrConflict       → 409
	anything else               → 500 Database error (logged)
*/
package handlers
