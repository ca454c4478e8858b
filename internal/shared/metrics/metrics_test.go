package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCounter = NewCounterVec(
	CounterOpts{
		Namespace: Namespace,
		Subsystem: SubReport,
		Name:      "textfile_probe_total",
	},
	[]string{"probe"},
)

func TestWriteToTextfile(t *testing.T) {
	t.Parallel()

	testCounter.WithLabelValues("a").Inc()

	path := filepath.Join(t.TempDir(), "dataportal_stats.prom")
	require.NoError(t, WriteToTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `dataportal_stats_report_textfile_probe_total{probe="a"} 1`)
}
