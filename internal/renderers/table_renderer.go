package renderers

import (
	"io"
	"strconv"

	"dataportal-stats/internal/models"
	"dataportal-stats/internal/stores"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const (
	monthHeader = "Month"
	totalsLabel = "Totals"
)

// TableRenderer prints the report as a plain text table: one row per month,
// then a totals row.
type TableRenderer struct {
	month  *color.Color
	totals *color.Color
}

// NewTableRenderer renders month labels green and the totals row yellow when
// colorize is set, and plain text otherwise.
func NewTableRenderer(colorize bool) *TableRenderer {
	r := &TableRenderer{
		month:  color.New(color.FgGreen),
		totals: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.month, r.totals} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *TableRenderer) Render(w io.Writer, buckets *stores.BucketStore) {
	table := tablewriter.NewWriter(w)

	header := make([]string, 0, len(models.ReportColumns)+1)
	header = append(header, monthHeader)
	for _, c := range models.ReportColumns {
		header = append(header, c.Title)
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("=")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for bucket := range buckets.Buckets() {
		row := make([]string, 0, len(header))
		row = append(row, r.month.Sprint(bucket.Label()))
		for _, c := range models.ReportColumns {
			// absent metrics stay blank; only the totals row shows zeros
			if v, ok := bucket.Metrics[c.Metric]; ok {
				row = append(row, strconv.FormatInt(v, 10))
			} else {
				row = append(row, "")
			}
		}
		table.Append(row)
	}

	totals := buckets.Totals()
	row := make([]string, 0, len(header))
	row = append(row, r.totals.Sprint(totalsLabel))
	for _, c := range models.ReportColumns {
		row = append(row, r.totals.Sprint(strconv.FormatInt(totals[c.Metric], 10)))
	}
	table.Append(row)

	table.Render()
}
