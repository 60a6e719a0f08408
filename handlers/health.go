// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ratemyanything/middleware"
	"github.com/danielhkuo/ratemyanything/models"
	"github.com/danielhkuo/ratemyanything/store"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Health handles GET /health
// Responds 200 while the process is up; Database reports whether storage
// is reachable
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	database := "connected"
	if err := h.store.Ping(ctx); err != nil {
		slog.Warn("database ping failed", "error", err)
		database = "disconnected"
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Database:  database,
		Timestamp: time.Now().UTC(),
	})
}
