// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics holds the Prometheus collectors exposed on /metrics.

Collectors are registered with the default registry at package init through
promauto, so importing the package is enough to expose them:

	mux.Handle("GET /metrics", promhttp.Handler())

# Collectors

	ratemyanything_judgements_total{category}            stored reviews by judgement category
	ratemyanything_reviews_total{op}                     reviews added ("add") or deleted ("delete")
	ratemyanything_aggregate_conflicts_total             versioned item updates that were retried
	ratemyanything_http_request_duration_seconds{route,status}

The route label is the matched ServeMux pattern, or "unmatched".
*/
package metrics
