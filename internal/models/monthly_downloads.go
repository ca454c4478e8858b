package models

// MonthlyDownloads summarises GBIF download activity for one calendar month.
type MonthlyDownloads struct {
	Year           int   `json:"year"`
	Month          int   `json:"month"`
	DownloadEvents int64 `json:"downloadEvents"`
	Records        int64 `json:"records"`
}
