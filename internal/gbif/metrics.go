package gbif

import (
	"dataportal-stats/internal/shared/metrics"
)

const (
	resultOK    = "ok"
	resultError = "error"
	resultHit   = "hit"
	resultMiss  = "miss"
)

var (
	// metricPagesFetchedTotal counts GBIF API pages requested, by result (ok|error).
	metricPagesFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGBIF,
			Name:      "pages_fetched_total",
		},
		[]string{"result"},
	)

	// metricCacheLookupsTotal counts cache lookups, by result (hit|miss).
	metricCacheLookupsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGBIF,
			Name:      "cache_lookups_total",
		},
		[]string{"result"},
	)
)
