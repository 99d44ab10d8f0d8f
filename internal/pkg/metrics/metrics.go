// Package metrics defines and registers all custom Prometheus metrics for the
// PFAS zip code checker API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pfas"

// ── Lookup metrics ────────────────────────────────────────────────────────────

// LookupsTotal counts single-zip membership checks.
// Label:
//   - result: "contaminated", "clean", or "invalid" (input failed normalization)
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of zip code membership checks, by result.",
	},
	[]string{"result"},
)

// ── Batch metrics ─────────────────────────────────────────────────────────────

// BatchRowsTotal counts individual rows annotated during batch processing.
// Label:
//   - outcome: "contaminated", "clean", or "invalid"
var BatchRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batch_rows_total",
		Help:      "Total number of batch file rows annotated, by outcome.",
	},
	[]string{"outcome"},
)

// BatchCacheTotal counts batch result cache decisions.
// Label:
//   - result: "hit" (identical file replayed from cache) or "miss"
var BatchCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batch_cache_total",
		Help:      "Total number of batch result cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Dataset metrics ───────────────────────────────────────────────────────────

// DatasetRecords tracks the number of distinct zip codes in the snapshot
// currently being served.
var DatasetRecords = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dataset_records",
		Help:      "Number of distinct contaminated zip codes in the current dataset snapshot.",
	},
)

// DatasetRefreshDuration measures how long a full dataset reload takes,
// fetch included.
// Label:
//   - result: "success" or "error"
var DatasetRefreshDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dataset_refresh_duration_seconds",
		Help:      "Duration of dataset reloads from the backing store.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"result"},
)
