package models

import (
	"maps"
	"time"
)

// MetricSet maps a metric name (e.g. "collection_records") to its accumulated value.
// Absent metrics are distinct from zero.
type MetricSet map[string]int64

func (m MetricSet) Clone() MetricSet {
	return maps.Clone(m)
}

// Bucket is the metric set for one calendar month.
type Bucket struct {
	Year    int       `json:"year"`
	Month   int       `json:"month"`
	Metrics MetricSet `json:"metrics"`
}

// Label renders the bucket month as "Jan 16".
func (b Bucket) Label() string {
	return time.Date(b.Year, time.Month(b.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}

// YearBuckets holds the month buckets of one year in ascending month order.
type YearBuckets struct {
	Year   int
	Months []Bucket
}
