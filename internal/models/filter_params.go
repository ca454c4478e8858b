package models

// FilterParams restricts a report to a year, or a quarter of a year. Nil means unset.
type FilterParams struct {
	Year    *int `json:"year,omitempty"`
	Quarter *int `json:"quarter,omitempty"`
}
