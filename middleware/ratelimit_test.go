// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0)
	assert.Nil(t, rl)

	// A nil limiter allows everything
	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("1.2.3.4"))
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"), "third request within the minute must be refused")

	// Other clients have their own bucket
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiter_BurstCapped(t *testing.T) {
	rl := NewRateLimiter(600)

	allowed := 0
	for i := 0; i < 20; i++ {
		if rl.Allow("1.2.3.4") {
			allowed++
		}
	}
	assert.Equal(t, maxRateBurst, allowed)
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(1)
	calls := 0
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/items/x/review", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		w := httptest.NewRecorder()
		handler(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, 1, calls)
}
