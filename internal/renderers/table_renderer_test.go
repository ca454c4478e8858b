package renderers

import (
	"bytes"
	"strings"
	"testing"

	"dataportal-stats/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuckets() *stores.BucketStore {
	buckets := stores.NewBucketStore()
	buckets.Increment(2016, 1, "collection_download_events", 3)
	buckets.Increment(2016, 1, "collection_records", 120)
	buckets.Increment(2015, 12, "other_download_events", 2)
	return buckets
}

func TestTableRenderer_Render_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewTableRenderer(false).Render(&buf, newTestBuckets())
	out := buf.String()

	assert.NotContains(t, out, "\x1b[")
	for _, title := range []string{"Month", "Collection records", "Other records", "GBIF records",
		"Collection download events", "Other download events", "GBIF download events"} {
		assert.Contains(t, out, title)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	dec, jan, totals := -1, -1, -1
	for i, line := range lines {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "Dec 15"):
			dec = i
		case strings.HasPrefix(strings.TrimSpace(line), "Jan 16"):
			jan = i
		case strings.HasPrefix(strings.TrimSpace(line), "Totals"):
			totals = i
		}
	}
	require.NotEqual(t, -1, dec)
	require.NotEqual(t, -1, jan)
	require.NotEqual(t, -1, totals)
	assert.Less(t, dec, jan)
	assert.Less(t, jan, totals)

	assert.Equal(t, []string{"Jan", "16", "120", "3"}, strings.Fields(lines[jan]))
	assert.Equal(t, []string{"Dec", "15", "2"}, strings.Fields(lines[dec]))
	assert.Equal(t, []string{"Totals", "120", "0", "0", "3", "2", "0"}, strings.Fields(lines[totals]))
}

func TestTableRenderer_Render_Colored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewTableRenderer(true).Render(&buf, newTestBuckets())
	out := buf.String()

	assert.Contains(t, out, "\x1b[32mJan 16\x1b[0m")
	assert.Contains(t, out, "\x1b[33mTotals\x1b[0m")
}

func TestTableRenderer_Render_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewTableRenderer(false).Render(&buf, stores.NewBucketStore())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	last := strings.Fields(lines[len(lines)-1])
	assert.Equal(t, []string{"Totals", "0", "0", "0", "0", "0", "0"}, last)
}
