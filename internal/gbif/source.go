package gbif

import (
	"context"
	"time"

	"dataportal-stats/internal/models"
	"dataportal-stats/internal/shared/loggers"
	"dataportal-stats/internal/stores"
)

// Source supplies the monthly GBIF download activity for the configured dataset.
//
//go:generate mockgen -source=source.go -destination=./mocks/source_mock.go -package=mocks
type Source interface {
	MonthlyDownloads(ctx context.Context) ([]models.MonthlyDownloads, error)
}

type cachedSource struct {
	client     Client
	cacheStore stores.GBIFCacheStore
	datasetKey string
	ttl        time.Duration
	now        func() time.Time
}

// NewCachedSource serves results from cacheStore while they are younger than
// ttl and refetches through client otherwise. A zero ttl disables the cache.
func NewCachedSource(client Client, cacheStore stores.GBIFCacheStore, datasetKey string, ttl time.Duration) Source {
	return &cachedSource{
		client:     client,
		cacheStore: cacheStore,
		datasetKey: datasetKey,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *cachedSource) MonthlyDownloads(ctx context.Context) ([]models.MonthlyDownloads, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldDatasetKey, s.datasetKey).Logger()

	if s.ttl > 0 {
		entry, ok, err := s.cacheStore.Get(ctx, s.datasetKey)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("failed to read gbif cache, refetching")
		case ok && entry.Fresh(s.now(), s.ttl):
			metricCacheLookupsTotal.WithLabelValues(resultHit).Inc()
			logger.Debug().Time("fetched_at", entry.FetchedAt).Msg("using cached gbif downloads")
			return entry.Months, nil
		}
		metricCacheLookupsTotal.WithLabelValues(resultMiss).Inc()
	}

	months, err := s.client.DatasetDownloads(ctx, s.datasetKey)
	if err != nil {
		return nil, err
	}
	logger.Info().Int(loggers.FieldRows, len(months)).Msg("fetched gbif downloads")

	if s.ttl > 0 {
		entry := &stores.GBIFCacheEntry{DatasetKey: s.datasetKey, FetchedAt: s.now().UTC(), Months: months}
		if err := s.cacheStore.Upsert(ctx, entry); err != nil {
			logger.Warn().Err(err).Msg("failed to write gbif cache")
		}
	}
	return months, nil
}
