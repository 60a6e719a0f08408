// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/ratemyanything/cliparse"
	"github.com/danielhkuo/ratemyanything/handlers"
	"github.com/danielhkuo/ratemyanything/judgement"
	"github.com/danielhkuo/ratemyanything/middleware"
	"github.com/danielhkuo/ratemyanything/store"
)

// APIVersion is reported by GET /
const APIVersion = "1.0.0"

func NewRouter(db *sql.DB, engine *judgement.Engine, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	s := store.New(db)
	healthHandler := handlers.NewHealthHandler(s)
	itemHandler := handlers.NewItemHandler(s)
	reviewHandler := handlers.NewReviewHandler(s, engine, cfg)
	judgeHandler := handlers.NewJudgeHandler(engine)
	limiter := middleware.NewRateLimiter(cfg.ReviewRateLimit)

	// Health check and metrics
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Items
	mux.HandleFunc("GET /items", middleware.WithLogging(itemHandler.ListItems))
	mux.HandleFunc("POST /items", middleware.WithLogging(itemHandler.CreateItem))
	mux.HandleFunc("GET /items/{id}", middleware.WithLogging(itemHandler.GetItem))

	// Reviews (add is rate limited per client, delete requires a bearer token)
	mux.HandleFunc("POST /items/{id}/review", middleware.WithLogging(limiter.Limit(reviewHandler.AddReview)))
	mux.HandleFunc("DELETE /items/{itemId}/review/{reviewId}",
		middleware.WithLogging(middleware.RequireUser(cfg.JWTSecret, reviewHandler.DeleteReview)))
	mux.HandleFunc("GET /reviews", middleware.WithLogging(reviewHandler.RecentReviews))

	// Judgement preview
	mux.HandleFunc("POST /judge", middleware.WithLogging(judgeHandler.Preview))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]any{
			"message": "RateMyAnything API",
			"version": APIVersion,
			"endpoints": map[string]string{
				"health":        "GET /health",
				"metrics":       "GET /metrics",
				"listItems":     "GET /items?q=",
				"createItem":    "POST /items",
				"getItem":       "GET /items/{id}",
				"addReview":     "POST /items/{id}/review",
				"deleteReview":  "DELETE /items/{itemId}/review/{reviewId}",
				"recentReviews": "GET /reviews?limit=",
				"judge":         "POST /judge",
			},
		})
	})

	return middleware.CORS(cfg.AllowedOrigin, mux)
}
