// Package metrics defines the Prometheus collectors exported by friendsplit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "friendsplit"

var (
	// FriendsAdded counts friends created through the add-friend form.
	FriendsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friends_added_total",
		Help:      "Friends added through the add-friend form.",
	})

	// Splits counts submitted splits by outcome (applied, noop).
	Splits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "splits_total",
		Help:      "Submitted bill splits by outcome.",
	}, []string{"outcome"})

	// ValidationFailures counts rejected inputs by field.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Inputs rejected by validation, by field.",
	}, []string{"field"})

	// ActiveSessions tracks live browser sessions.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of live browser sessions.",
	})

	// RequestDuration observes HTTP request latency by route and status class.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Outcome labels for Splits.
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
)
