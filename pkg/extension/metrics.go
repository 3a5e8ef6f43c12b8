package extension

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extension_invocations_total",
			Help: "Total number of extension invocations",
		},
		[]string{"extension", "status"},
	)

	InvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "extension_invocation_duration_seconds",
			Help:    "Time spent running extension transforms",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"extension"},
	)

	// TransformCounts accumulates Result.Counters per extension
	TransformCounts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extension_transform_items_total",
			Help: "Items produced or inspected by extension transforms",
		},
		[]string{"extension", "counter"},
	)
)
