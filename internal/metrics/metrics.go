// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BatchesProcessed counts scoring batches by outcome.
	BatchesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscout_batches_total",
			Help: "Total number of scoring batches processed",
		},
		[]string{"status"}, // "ok", "error"
	)

	// BatchDuration observes end-to-end batch scoring time.
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventscout_batch_duration_seconds",
			Help:    "Duration of full batch scoring runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// EventsScored counts events that went through opportunity and insight
	// scoring.
	EventsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventscout_events_scored_total",
			Help: "Total number of events scored",
		},
	)

	// EventsSkipped counts malformed events dropped from batches.
	EventsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventscout_events_skipped_total",
			Help: "Total number of events skipped for missing identifying fields",
		},
	)

	// TopicsValidated counts candidate topics by validation outcome.
	TopicsValidated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscout_topics_validated_total",
			Help: "Total number of candidate topics cross-validated",
		},
		[]string{"outcome"}, // "accepted", "rejected"
	)

	// SignificanceTests counts trend tests by strength bucket, including the
	// "skipped" bucket for samples too small to assess.
	SignificanceTests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscout_significance_tests_total",
			Help: "Total number of period-change significance tests by outcome",
		},
		[]string{"strength"}, // "strong", "moderate", "weak", "insufficient-data", "skipped"
	)

	// RecommendationsProduced counts ranked recommendations by type.
	RecommendationsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscout_recommendations_total",
			Help: "Total number of recommendations produced",
		},
		[]string{"type"}, // "immediate", "strategic", "research"
	)
)

// ObserveBatch records one finished batch.
func ObserveBatch(status string, duration time.Duration) {
	BatchesProcessed.WithLabelValues(status).Inc()
	BatchDuration.Observe(duration.Seconds())
}
