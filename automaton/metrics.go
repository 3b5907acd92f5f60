package automaton

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric outcome and result constants.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"

	resultConsistent   = "consistent"
	resultInconsistent = "inconsistent"
	resultNone         = "none"

	resultEmpty    = "empty"
	resultNonEmpty = "non_empty"
)

// Metric definitions with appropriate labels.
var (
	// parsesTotal tracks textual description parses by outcome.
	parsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automata_parses_total",
		Help: "Total number of textual description parses by outcome (success or error)",
	}, []string{"outcome"})

	// productStates tracks how many reachable states each product
	// construction materializes.
	productStates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "automata_product_states",
		Help:    "Number of reachable states materialized per product construction",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	// emptinessChecksTotal tracks emptiness checks by result.
	emptinessChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automata_emptiness_checks_total",
		Help: "Total number of emptiness checks by result (empty or non_empty)",
	}, []string{"result"})

	// consistencyChecksTotal tracks consistency checks by outcome and result.
	consistencyChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automata_consistency_checks_total",
		Help: "Total number of consistency checks by outcome (success or error) and result",
	}, []string{"outcome", "result"})
)
