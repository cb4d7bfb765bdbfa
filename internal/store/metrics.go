package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// mutationsTotal counts collection writes by kind and operation.
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photospro_store_mutations_total",
			Help: "Number of collection mutations that triggered a persist",
		},
		[]string{"kind", "op"},
	)

	// persistFailuresTotal counts failed collection writes.
	persistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photospro_store_persist_failures_total",
			Help: "Number of collection writes that failed",
		},
		[]string{"kind"},
	)
)
