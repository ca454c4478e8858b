package aggregators

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dataportal-stats/internal/models"
)

const (
	minFilterYear = 1000
	maxFilterYear = 9999
)

// ReportFilter restricts a report to one year, or one quarter of a year.
// The zero value accepts everything.
type ReportFilter struct {
	year     int
	quarter  int
	calendar models.QuarterCalendar
}

// NewReportFilter validates params against calendar. A quarter needs a year.
func NewReportFilter(params models.FilterParams, calendar models.QuarterCalendar) (ReportFilter, error) {
	f := ReportFilter{calendar: calendar}

	if params.Year != nil {
		if *params.Year < minFilterYear || *params.Year > maxFilterYear {
			return ReportFilter{}, errInvalidFilter(fmt.Sprintf("year %d is not a four-digit year", *params.Year), nil)
		}
		f.year = *params.Year
	}

	if params.Quarter != nil {
		if !calendar.Has(*params.Quarter) {
			return ReportFilter{}, errInvalidFilter(fmt.Sprintf("quarter %d is not between 1 and 4", *params.Quarter), nil)
		}
		if params.Year == nil {
			return ReportFilter{}, errInvalidFilter("quarter requires a year", nil)
		}
		f.quarter = *params.Quarter
	}

	return f, nil
}

// Accept reports whether ts falls inside the filter. ts must already be in the report location.
func (f ReportFilter) Accept(ts time.Time) bool {
	return f.AcceptMonth(ts.Year(), int(ts.Month()))
}

func (f ReportFilter) AcceptMonth(year, month int) bool {
	if f.year != 0 && year != f.year {
		return false
	}
	if f.quarter != 0 && !f.calendar.Contains(f.quarter, month) {
		return false
	}
	return true
}

// ParseFilterParams parses raw year and quarter values as given on the command
// line or in a query string. Empty values are unset; two-digit years are read
// as 20xx.
func ParseFilterParams(year, quarter string) (models.FilterParams, error) {
	var params models.FilterParams

	if year = strings.TrimSpace(year); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return models.FilterParams{}, errInvalidFilter(fmt.Sprintf("year %q is not a number", year), err)
		}
		if len(year) == 2 && y >= 0 {
			y += 2000
		}
		params.Year = &y
	}

	if quarter = strings.TrimSpace(quarter); quarter != "" {
		q, err := strconv.Atoi(quarter)
		if err != nil {
			return models.FilterParams{}, errInvalidFilter(fmt.Sprintf("quarter %q is not a number", quarter), err)
		}
		params.Quarter = &q
	}

	return params, nil
}
