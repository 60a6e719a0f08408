// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Review operations for ReviewsTotal
const (
	OpAdd    = "add"
	OpDelete = "delete"
)

var (
	JudgementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ratemyanything_judgements_total",
		Help: "Judgements produced, by category",
	}, []string{"category"})

	ReviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ratemyanything_reviews_total",
		Help: "Reviews added or deleted",
	}, []string{"op"})

	AggregateConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ratemyanything_aggregate_conflicts_total",
		Help: "Item updates that lost the optimistic version check and were retried",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ratemyanything_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)
