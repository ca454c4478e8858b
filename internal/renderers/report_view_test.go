package renderers

import (
	"encoding/json"
	"testing"

	"dataportal-stats/internal/models"
	"dataportal-stats/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportView(t *testing.T) {
	t.Parallel()

	year := 2016
	view := NewReportView(models.FilterParams{Year: &year}, newTestBuckets())

	require.Len(t, view.Months, 2)
	assert.Equal(t, MonthView{Year: 2015, Month: 12, Label: "Dec 15", Metrics: models.MetricSet{"other_download_events": 2}}, view.Months[0])
	assert.Equal(t, "Jan 16", view.Months[1].Label)
	assert.Equal(t, models.ReportColumns, view.Columns)
	assert.Len(t, view.Totals, len(models.ReportColumns))
	assert.Equal(t, int64(120), view.Totals["collection_records"])
	assert.Equal(t, int64(0), view.Totals["gbif_records"])

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"filter":{"year":2016}`)
	assert.Contains(t, string(data), `"label":"Jan 16"`)
}

func TestNewReportView_Empty(t *testing.T) {
	t.Parallel()

	view := NewReportView(models.FilterParams{}, stores.NewBucketStore())

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"months":[]`)
	assert.Contains(t, string(data), `"filter":{}`)
}
