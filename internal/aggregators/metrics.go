package aggregators

import (
	"dataportal-stats/internal/shared/metrics"
)

var (
	// metricEventsFoldedTotal counts events that passed the filter and were added
	// to a bucket, by source (archive|live|gbif) and category (collection|other|gbif).
	metricEventsFoldedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "events_folded_total",
		},
		[]string{"source", "category"},
	)

	// metricEventsFilteredTotal counts events rejected by the year/quarter filter.
	// Archive events rejected here still advance the cutover.
	metricEventsFilteredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "events_filtered_total",
		},
		[]string{"source"},
	)

	// metricReportRunsTotal counts report runs by outcome; error_code is empty on success.
	metricReportRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
