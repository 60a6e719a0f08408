// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"errors"

	"github.com/danielhkuo/ratemyanything/models"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrNotPermitted   = errors.New("not permitted")
	ErrConflict       = errors.New("item modified concurrently")
)

// RecomputeAverage returns the arithmetic mean of ratings.
// ok is false when there are no ratings and the average is undefined.
func RecomputeAverage(ratings []int) (avg float64, ok bool) {
	if len(ratings) == 0 {
		return 0, false
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings)), true
}

// Ratings extracts the star ratings of reviews in order.
func Ratings(reviews []models.Review) []int {
	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.StarRating
	}
	return ratings
}

// AddReview appends review to the item and recomputes its average.
func AddReview(item *models.Item, review models.Review) {
	item.Reviews = append(item.Reviews, review)
	recompute(item)
}

// RemoveReview deletes the review with reviewID when requester wrote it.
// On error the item is left untouched.
func RemoveReview(item *models.Item, reviewID, requester string) (models.Review, error) {
	idx := -1
	for i, r := range item.Reviews {
		if r.ID == reviewID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Review{}, ErrReviewNotFound
	}

	removed := item.Reviews[idx]
	if removed.Username != requester {
		return models.Review{}, ErrNotPermitted
	}

	reviews := make([]models.Review, 0, len(item.Reviews)-1)
	reviews = append(reviews, item.Reviews[:idx]...)
	reviews = append(reviews, item.Reviews[idx+1:]...)
	item.Reviews = reviews
	recompute(item)

	return removed, nil
}

// recompute sets the item's count and average from its current reviews.
func recompute(item *models.Item) {
	item.ReviewCount = len(item.Reviews)
	if avg, ok := RecomputeAverage(Ratings(item.Reviews)); ok {
		item.AverageRating = &avg
	} else {
		item.AverageRating = nil
	}
}
