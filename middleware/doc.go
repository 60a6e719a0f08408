// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /items", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms), and observes the latency histogram labelled by route pattern.

# CORS Middleware

	handler := middleware.CORS(cfg.AllowedOrigin, mux)

"*" reflects the request's Origin. Allows GET, POST, DELETE, OPTIONS with
Content-Type and Authorization headers.

# Bearer Tokens

	mux.HandleFunc("DELETE /items/{itemId}/review/{reviewId}",
		middleware.RequireUser(cfg.JWTSecret, handler))

Missing or invalid tokens get 401. The handler reads the caller with
UserFromContext.

# Rate Limiting

	limiter := middleware.NewRateLimiter(cfg.ReviewRateLimit)
	mux.HandleFunc("POST /items/{id}/review", limiter.Limit(handler))

One token bucket per client IP. A limit of 0 disables limiting.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.AddReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP. Used for rate limiting and IP hashing.
*/
package middleware
