// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ratemyanything/aggregate"
	"github.com/danielhkuo/ratemyanything/middleware"
	"github.com/danielhkuo/ratemyanything/models"
	"github.com/danielhkuo/ratemyanything/store"
)

type ItemHandler struct {
	store *store.Store
}

func NewItemHandler(s *store.Store) *ItemHandler {
	return &ItemHandler{store: s}
}

// ListItems handles GET /items?q=
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, items)
}

// GetItem handles GET /items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	item, err := h.store.GetItem(r.Context(), itemID)
	if errors.Is(err, aggregate.ErrItemNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to load item", "item_id", itemID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, item)
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	req.Category = strings.TrimSpace(req.Category)

	item, err := h.store.CreateItem(r.Context(), req)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	slog.Info("item created", "item_id", item.ID, "name", item.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateItemResponse{ItemID: item.ID})
}
