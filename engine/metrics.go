// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// result label values
const (
	resultFound    = "found"
	resultNotFound = "not_found"
	resultError    = "error"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "degrees_searches_total",
		Help: "Total searches by strategy and result",
	}, []string{"strategy", "result"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "degrees_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	}, []string{"strategy"})

	nodesExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "degrees_nodes_expanded",
		Help:    "People expanded per search, both directions combined",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"strategy"})
)
