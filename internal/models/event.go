package models

import "time"

// Event is one download request, from either the historical archive or the live log.
// A nil Count means the source recorded the download but not how many records it held.
type Event struct {
	Timestamp  time.Time
	ResourceID string
	Count      *int64
}

// HasCount reports whether the event carries a positive record count.
func (e Event) HasCount() bool {
	return e.Count != nil && *e.Count > 0
}
