// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ratemyanything/aggregate"
	"github.com/danielhkuo/ratemyanything/auth"
	"github.com/danielhkuo/ratemyanything/cliparse"
	"github.com/danielhkuo/ratemyanything/judgement"
	"github.com/danielhkuo/ratemyanything/middleware"
	"github.com/danielhkuo/ratemyanything/models"
	"github.com/danielhkuo/ratemyanything/store"
)

// Feed size for GET /reviews
const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

type ReviewHandler struct {
	store  *store.Store
	engine *judgement.Engine
	cfg    cliparse.Config
}

func NewReviewHandler(s *store.Store, engine *judgement.Engine, cfg cliparse.Config) *ReviewHandler {
	return &ReviewHandler{store: s, engine: engine, cfg: cfg}
}

// AddReview handles POST /items/{id}/review
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	var req models.AddReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if msg := validateRating(req.Rating, req.Review); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	// Track for abuse detection (privacy-preserving)
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.JWTSecret)
	var userAgent *string
	if ua := r.UserAgent(); ua != "" {
		userAgent = &ua
	}

	review := models.Review{
		ID:         auth.NewID(),
		Username:   req.Username,
		StarRating: req.Rating,
		ReviewText: req.Review,
		Judgement:  h.engine.Judge(req.Review, req.Rating),
		IPHash:     &ipHash,
		UserAgent:  userAgent,
	}

	item, err := h.store.AddReview(r.Context(), itemID, review)
	if err != nil {
		writeStoreError(w, err, "failed to add review", itemID)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// DeleteReview handles DELETE /items/{itemId}/review/{reviewId}
// Requires a bearer token; only the review's author may delete it
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemId")
	reviewID := r.PathValue("reviewId")
	if itemID == "" || reviewID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id and review_id are required")
		return
	}

	username, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	item, err := h.store.DeleteReview(r.Context(), itemID, reviewID, username)
	if err != nil {
		writeStoreError(w, err, "failed to delete review", itemID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteReviewResponse{
		Success:       true,
		AverageRating: item.AverageRating,
		ReviewCount:   item.ReviewCount,
	})
}

// RecentReviews handles GET /reviews?limit=
func (h *ReviewHandler) RecentReviews(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRecentLimit)
	}

	reviews, err := h.store.RecentReviews(r.Context(), limit)
	if err != nil {
		slog.Error("failed to query recent reviews", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for i := range reviews {
		reviews[i].Posted = humanize.Time(reviews[i].CreatedAt)
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecentReviewsResponse{
		Count:   len(reviews),
		Reviews: reviews,
	})
}

// validateRating returns a client-facing message, or "" when valid
func validateRating(rating int, text string) string {
	if rating < models.MinStarRating || rating > models.MaxStarRating {
		return "rating must be between 1 and 5"
	}
	if strings.TrimSpace(text) == "" {
		return "review is required"
	}
	return ""
}

// writeStoreError maps store errors to HTTP responses
func writeStoreError(w http.ResponseWriter, err error, action, itemID string) {
	switch {
	case errors.Is(err, aggregate.ErrItemNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, aggregate.ErrReviewNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Review not found")
	case errors.Is(err, aggregate.ErrNotPermitted):
		middleware.ErrorResponse(w, http.StatusForbidden, "Not allowed")
	case errors.Is(err, aggregate.ErrConflict):
		slog.Warn(action, "item_id", itemID, "error", err)
		middleware.ErrorResponse(w, http.StatusConflict, "Item is busy, try again")
	default:
		slog.Error(action, "item_id", itemID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
