// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateItemRequest: name, category, description
  - AddReviewRequest: username, rating (1-5), review
  - JudgeRequest: rating, review

# Response Types

Types for JSON responses:

  - CreateItemResponse: item_id
  - DeleteReviewResponse: success, average_rating, review_count
  - RecentReviewsResponse: count, reviews
  - HealthResponse: status, database, timestamp
  - ErrorResponse: error, message

# Domain Types

  - Item: reviewable thing with its reviews and aggregate rating
  - Review: one user's rating, text and generated judgement
  - RecentReview: review plus item name for the site-wide feed

Item.AverageRating is a pointer: it serializes as null while the item has
no reviews. IPHash and UserAgent on Review are stored but never serialized.

# Constants

Rating bounds:

	MinStarRating = 1
	MaxStarRating = 5
*/
package models
