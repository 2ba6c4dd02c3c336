// Package observability exposes Prometheus instrumentation for the insight
// service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	insightsComputedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "insight_service",
		Subsystem: "engine",
		Name:      "insights_computed_total",
		Help:      "Number of weekly insights computed, grouped by score level.",
	}, []string{"level"})

	snapshotHitCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "insight_service",
		Subsystem: "snapshots",
		Name:      "lookups_total",
		Help:      "Snapshot lookups grouped by outcome (hit or computed).",
	}, []string{"outcome"})

	snapshotPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "insight_service",
		Subsystem: "snapshots",
		Name:      "last_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent insight snapshot upsert.",
	})
)

func init() {
	prometheus.MustRegister(insightsComputedCounter, snapshotHitCounter, snapshotPersistGauge)
}

// RecordInsightComputed counts a fresh engine computation by score level.
func RecordInsightComputed(level string) {
	insightsComputedCounter.WithLabelValues(level).Inc()
}

// RecordSnapshotHit counts a request served from a stored snapshot.
func RecordSnapshotHit() {
	snapshotHitCounter.WithLabelValues("hit").Inc()
}

// RecordSnapshotComputed counts a request that required a fresh computation.
func RecordSnapshotComputed() {
	snapshotHitCounter.WithLabelValues("computed").Inc()
}

// RecordSnapshotPersisted updates the persistence watermark gauge.
func RecordSnapshotPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	snapshotPersistGauge.Set(float64(ts.Unix()))
}
