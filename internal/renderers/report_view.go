package renderers

import (
	"dataportal-stats/internal/models"
	"dataportal-stats/internal/stores"
)

// ReportView is the JSON form of a report.
//
// Example JSON:
//
//	{
//	  "filter": {"year": 2016, "quarter": 1},
//	  "columns": [{"metric": "collection_records", "title": "Collection records"}, ...],
//	  "months": [
//	    {"year": 2016, "month": 1, "label": "Jan 16", "metrics": {"collection_download_events": 3, "collection_records": 120}}
//	  ],
//	  "totals": {"collection_records": 120, "other_records": 0, ...}
//	}
type ReportView struct {
	Filter  models.FilterParams `json:"filter"`
	Columns []models.Column     `json:"columns"`
	Months  []MonthView         `json:"months"`
	Totals  models.MetricSet    `json:"totals"`
}

type MonthView struct {
	Year    int              `json:"year"`
	Month   int              `json:"month"`
	Label   string           `json:"label"`
	Metrics models.MetricSet `json:"metrics"`
}

// NewReportView lists months in ascending order. Totals carry every report
// column, zero when nothing was counted.
func NewReportView(filter models.FilterParams, buckets *stores.BucketStore) *ReportView {
	view := &ReportView{
		Filter:  filter,
		Columns: models.ReportColumns,
		Months:  make([]MonthView, 0, buckets.Len()),
		Totals:  make(models.MetricSet, len(models.ReportColumns)),
	}

	for bucket := range buckets.Buckets() {
		view.Months = append(view.Months, MonthView{
			Year:    bucket.Year,
			Month:   bucket.Month,
			Label:   bucket.Label(),
			Metrics: bucket.Metrics,
		})
	}

	totals := buckets.Totals()
	for _, c := range models.ReportColumns {
		view.Totals[c.Metric] = totals[c.Metric]
	}
	return view
}
