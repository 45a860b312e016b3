// Package metrics declares the Prometheus collectors of the engine. They are
// registered with the default registry and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decisions counts persisted decisions by outcome and decline code.
var Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "authengine",
	Subsystem: "engine",
	Name:      "decisions_total",
	Help:      "Authorization decisions by outcome and decline code.",
}, []string{"outcome", "code"})

// DecisionLatency observes time spent deciding, from engine entry to the
// persisted decision.
var DecisionLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "authengine",
	Subsystem: "engine",
	Name:      "decision_duration_seconds",
	Help:      "Time to reach and persist a decision.",
	Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2},
}, []string{"outcome"})

// DuplicateDeliveries counts webhooks answered from a stored decision.
var DuplicateDeliveries = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "authengine",
	Subsystem: "engine",
	Name:      "duplicate_deliveries_total",
	Help:      "Authorizations answered with a previously stored decision.",
})

// StoreRetries counts transient store errors that were retried.
var StoreRetries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "authengine",
	Subsystem: "store",
	Name:      "retries_total",
	Help:      "Transient store errors retried, by operation.",
}, []string{"operation"})

// WebhookTimeouts counts requests failed closed because the deadline fired
// or the store stayed unavailable.
var WebhookTimeouts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "authengine",
	Subsystem: "webhook",
	Name:      "fail_closed_total",
	Help:      "Authorizations declined with webhook_timeout, by cause.",
}, []string{"cause"})

// ReconciliationMismatches counts settlements that disagree with the stored
// decision.
var ReconciliationMismatches = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "authengine",
	Subsystem: "settlement",
	Name:      "reconciliation_mismatches_total",
	Help:      "Settlements whose network outcome disagrees with the stored decision.",
})

// HTTPRequests counts HTTP responses by route pattern, method and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "authengine",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP responses by route, method and status code.",
}, []string{"route", "method", "status"})

// HTTPLatency observes HTTP handling time by route pattern and method.
var HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "authengine",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})
