// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/danielhkuo/ratemyanything/judgement"
)

// Rating bounds
const (
	MinStarRating = 1
	MaxStarRating = 5
)

// Request types

type CreateItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type AddReviewRequest struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
}

type JudgeRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// Response types

type CreateItemResponse struct {
	ItemID string `json:"item_id"`
}

type DeleteReviewResponse struct {
	Success       bool     `json:"success"`
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
}

type RecentReviewsResponse struct {
	Count   int            `json:"count"`
	Reviews []RecentReview `json:"reviews"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// Domain types

// Item is a reviewable thing. AverageRating is nil while it has no reviews.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	AverageRating *float64  `json:"average_rating"`
	ReviewCount   int       `json:"review_count"`
	Reviews       []Review  `json:"reviews,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type Review struct {
	ID         string           `json:"id"`
	ItemID     string           `json:"item_id"`
	Username   string           `json:"username"`
	StarRating int              `json:"rating"`
	ReviewText string           `json:"review"`
	Judgement  judgement.Record `json:"judgement"`
	CreatedAt  time.Time        `json:"created_at"`
	IPHash     *string          `json:"-"` // Never expose in JSON
	UserAgent  *string          `json:"-"` // Never expose in JSON
}

// RecentReview is a review in the site-wide feed.
type RecentReview struct {
	Review
	ItemName string `json:"item_name"`
	Posted   string `json:"posted"` // e.g. "3 minutes ago"
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
