// Package metrics exposes Prometheus metrics for the socialgraph service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_store_lookups_total",
			Help: "Total number of store lookup calls",
		},
		[]string{"kind"},
	)

	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_store_mutations_total",
			Help: "Total number of store mutation calls",
		},
		[]string{"kind", "op"},
	)

	CascadeCleanups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_cascade_cleanups_total",
			Help: "Total number of entities cleaned up by user delete cascades",
		},
		[]string{"kind"},
	)

	LoaderBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_loader_batches_total",
			Help: "Total number of coalesced loader batch dispatches",
		},
		[]string{"kind"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	GraphQLDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "socialgraph_graphql_duration_seconds",
			Help:    "Time taken to execute GraphQL requests",
			Buckets: prometheus.DefBuckets,
		},
	)
)
