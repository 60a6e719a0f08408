// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ratemyanything/judgement"
	"github.com/danielhkuo/ratemyanything/middleware"
	"github.com/danielhkuo/ratemyanything/models"
)

type JudgeHandler struct {
	engine *judgement.Engine
}

func NewJudgeHandler(engine *judgement.Engine) *JudgeHandler {
	return &JudgeHandler{engine: engine}
}

// Preview handles POST /judge
// Returns the judgement a review would get without storing anything
func (h *JudgeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req models.JudgeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateRating(req.Rating, req.Review); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.engine.Judge(req.Review, req.Rating))
}
