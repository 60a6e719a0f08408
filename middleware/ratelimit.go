// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	maxRateBurst = 5

	// Above this many clients, idle limiters are dropped
	maxTrackedClients = 10000
)

// RateLimiter limits requests per client IP
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter allows perMinute requests per client, with short bursts.
// It returns nil when perMinute is zero or less; a nil limiter lets
// everything through.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &RateLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    min(perMinute, maxRateBurst),
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether the client may make another request now
func (rl *RateLimiter) Allow(client string) bool {
	if rl == nil {
		return true
	}

	rl.mu.Lock()
	limiter, ok := rl.limiters[client]
	if !ok {
		if len(rl.limiters) >= maxTrackedClients {
			rl.pruneLocked()
		}
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[client] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// pruneLocked forgets clients whose bucket has refilled
func (rl *RateLimiter) pruneLocked() {
	for client, limiter := range rl.limiters {
		if limiter.Tokens() >= float64(rl.burst) {
			delete(rl.limiters, client)
		}
	}
}

// Limit wraps a handler, answering 429 once a client exceeds its rate
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	if rl == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ip := GetClientIP(r)
		if !rl.Allow(ip) {
			slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			ErrorResponse(w, http.StatusTooManyRequests, "Too many requests, slow down")
			return
		}
		next(w, r)
	}
}
