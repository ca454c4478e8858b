package gbif

import (
	"cmp"
	"slices"
	"time"

	"dataportal-stats/internal/models"
)

type monthKey struct {
	year  int
	month int
}

type monthlySummary struct {
	byMonth map[monthKey]*models.MonthlyDownloads
}

func newMonthlySummary() *monthlySummary {
	return &monthlySummary{byMonth: make(map[monthKey]*models.MonthlyDownloads)}
}

// add counts one download of records rows created at ts.
func (s *monthlySummary) add(ts time.Time, records int64) {
	key := monthKey{year: ts.Year(), month: int(ts.Month())}
	m, ok := s.byMonth[key]
	if !ok {
		m = &models.MonthlyDownloads{Year: key.year, Month: key.month}
		s.byMonth[key] = m
	}
	m.DownloadEvents++
	if records > 0 {
		m.Records += records
	}
}

// months returns the summary in ascending (year, month) order.
func (s *monthlySummary) months() []models.MonthlyDownloads {
	out := make([]models.MonthlyDownloads, 0, len(s.byMonth))
	for _, m := range s.byMonth {
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b models.MonthlyDownloads) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month))
	})
	return out
}
