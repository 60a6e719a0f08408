// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ratemyanything/auth"
)

type contextKey struct{}

var userKey contextKey

// RequireUser rejects requests without a valid bearer token and stores the
// token's username on the request context
func RequireUser(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		username, err := auth.ParseToken(strings.TrimSpace(token), secret)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) && !errors.Is(err, auth.ErrMissingUsername) {
				slog.Error("failed to verify token", "error", err)
			}
			ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey, username)))
	}
}

// UserFromContext returns the username set by RequireUser
func UserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(userKey).(string)
	return username, ok && username != ""
}
