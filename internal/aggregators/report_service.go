package aggregators

import (
	"context"
	"errors"
	"time"

	"dataportal-stats/internal/gbif"
	"dataportal-stats/internal/models"
	"dataportal-stats/internal/shared/loggers"
	"dataportal-stats/internal/shared/svcerrors"
	"dataportal-stats/internal/stores"
)

const (
	sourceArchive = "archive"
	sourceLive    = "live"
	sourceGBIF    = "gbif"
)

// ReportService builds the monthly download report. Every call is an
// independent run with its own buckets and cutover.
//
//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Generate returns the filtered monthly buckets. Errors are *svcerrors.ServiceError.
	Generate(ctx context.Context, params models.FilterParams) (*stores.BucketStore, error)
}

type reportService struct {
	classifier   CategoryClassifier
	archiveStore stores.ArchiveStore
	liveLogStore stores.LiveLogStore
	gbifSource   gbif.Source
	calendar     models.QuarterCalendar
	loc          *time.Location
}

// NewReportService wires the report sources. gbifSource may be nil when GBIF
// enrichment is disabled.
func NewReportService(
	classifier CategoryClassifier,
	archiveStore stores.ArchiveStore,
	liveLogStore stores.LiveLogStore,
	gbifSource gbif.Source,
	calendar models.QuarterCalendar,
	loc *time.Location,
) ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &reportService{
		classifier:   classifier,
		archiveStore: archiveStore,
		liveLogStore: liveLogStore,
		gbifSource:   gbifSource,
		calendar:     calendar,
		loc:          loc,
	}
}

func (s *reportService) Generate(ctx context.Context, params models.FilterParams) (*stores.BucketStore, error) {
	start := time.Now()
	buckets, err := s.generate(ctx, params)

	code := svcerrors.CodeOf(err)
	metricReportRunsTotal.WithLabelValues(code).Inc()
	metricReportDurationSeconds.WithLabelValues(code).Observe(time.Since(start).Seconds())
	return buckets, err
}

func (s *reportService) generate(ctx context.Context, params models.FilterParams) (*stores.BucketStore, error) {
	logger := loggers.Ctx(ctx)

	filter, err := NewReportFilter(params, s.calendar)
	if err != nil {
		return nil, err
	}

	buckets := stores.NewBucketStore()
	tracker := NewCutoverTracker()

	archived, err := s.archiveStore.Events(ctx)
	if err != nil {
		if errors.Is(err, stores.ErrArchiveMalformed) {
			return nil, errArchiveMalformed(err)
		}
		return nil, errArchiveUnreadable(err)
	}
	for _, event := range archived {
		// every historical row moves the cutover, including rows the filter rejects
		tracker.Observe(event.Timestamp)
		s.foldEvent(buckets, filter, sourceArchive, event)
	}

	cutover, hasCutover := tracker.Cutover()
	logEvent := logger.Info().Str(loggers.FieldSource, sourceArchive).Int(loggers.FieldRows, len(archived))
	if hasCutover {
		logEvent = logEvent.Time(loggers.FieldCutover, cutover)
	}
	logEvent.Msg("folded historical archive")

	live, err := s.liveLogStore.EventsAfter(ctx, cutover, hasCutover)
	if err != nil {
		if errors.Is(err, stores.ErrLiveStoreUnavailable) {
			return nil, errLiveStoreUnavailable(err)
		}
		return nil, errLiveQueryFailed(err)
	}
	for _, event := range live {
		s.foldEvent(buckets, filter, sourceLive, event)
	}
	logger.Info().Str(loggers.FieldSource, sourceLive).Int(loggers.FieldRows, len(live)).Msg("folded live log")

	if s.gbifSource != nil {
		months, err := s.gbifSource.MonthlyDownloads(ctx)
		if err != nil {
			return nil, errGBIFSourceFailed(err)
		}
		s.foldGBIF(buckets, filter, months)
		logger.Info().Str(loggers.FieldSource, sourceGBIF).Int(loggers.FieldRows, len(months)).Msg("folded gbif downloads")
	}

	return buckets, nil
}

// foldEvent classifies, filters and counts one download event.
func (s *reportService) foldEvent(buckets *stores.BucketStore, filter ReportFilter, source string, event models.Event) {
	category := s.classifier.Classify(event.ResourceID)

	ts := event.Timestamp.In(s.loc)
	if !filter.Accept(ts) {
		metricEventsFilteredTotal.WithLabelValues(source).Inc()
		return
	}

	year, month := ts.Year(), int(ts.Month())
	buckets.Increment(year, month, category.DownloadEventsMetric(), 1)
	if event.HasCount() {
		buckets.Increment(year, month, category.RecordsMetric(), *event.Count)
	}
	metricEventsFoldedTotal.WithLabelValues(source, string(category)).Inc()
}

func (s *reportService) foldGBIF(buckets *stores.BucketStore, filter ReportFilter, months []models.MonthlyDownloads) {
	for _, m := range months {
		if !filter.AcceptMonth(m.Year, m.Month) {
			metricEventsFilteredTotal.WithLabelValues(sourceGBIF).Inc()
			continue
		}
		buckets.Increment(m.Year, m.Month, models.CategoryGBIF.DownloadEventsMetric(), m.DownloadEvents)
		buckets.Increment(m.Year, m.Month, models.CategoryGBIF.RecordsMetric(), m.Records)
		metricEventsFoldedTotal.WithLabelValues(sourceGBIF, string(models.CategoryGBIF)).Inc()
	}
}
