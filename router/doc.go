// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the RateMyAnything API.

# Route Registration

NewRouter wires every endpoint and wraps the mux in CORS:

	handler := router.NewRouter(db, engine, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Items:

	GET  /items?q=    - List items, optional name filter
	POST /items       - Create item
	GET  /items/{id}  - Item with reviews

Reviews:

	POST   /items/{id}/review                - Add review (rate limited)
	DELETE /items/{itemId}/review/{reviewId} - Delete own review (bearer token)
	GET    /reviews?limit=                   - Recent reviews across items

Judgement:

	POST /judge - Preview a judgement
*/
package router
