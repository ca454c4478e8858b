package models

import "fmt"

type Category string

const (
	CategoryCollection Category = "collection"
	CategoryOther      Category = "other"
	CategoryGBIF       Category = "gbif"
)

func (c Category) DownloadEventsMetric() string {
	return fmt.Sprintf("%s_download_events", c)
}

func (c Category) RecordsMetric() string {
	return fmt.Sprintf("%s_records", c)
}

// Column is one metric column of the monthly report.
type Column struct {
	Metric string `json:"metric"`
	Title  string `json:"title"`
}

// ReportColumns is the fixed presentation order of report metrics.
var ReportColumns = []Column{
	{Metric: CategoryCollection.RecordsMetric(), Title: "Collection records"},
	{Metric: CategoryOther.RecordsMetric(), Title: "Other records"},
	{Metric: CategoryGBIF.RecordsMetric(), Title: "GBIF records"},
	{Metric: CategoryCollection.DownloadEventsMetric(), Title: "Collection download events"},
	{Metric: CategoryOther.DownloadEventsMetric(), Title: "Other download events"},
	{Metric: CategoryGBIF.DownloadEventsMetric(), Title: "GBIF download events"},
}
