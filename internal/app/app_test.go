package app

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dataportal-stats/internal/models"
	"dataportal-stats/internal/shared/configs"
	"dataportal-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const collectionResource = "bb909597-dedf-427d-8c04-4c02b3a24db3"

func newTestConfig(t *testing.T) *configs.Config {
	t.Helper()

	rootDir := t.TempDir()
	archive := `[
		{"date": "2016-01-03", "resource_id": "` + collectionResource + `", "count": 120},
		{"date": "2016-01-20", "resource_id": "other-resource"},
		{"date": "2016-02-10", "resource_id": "` + collectionResource + `", "count": 7}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, "legacy.json"), []byte(archive), 0o644))

	dbPath := filepath.Join(t.TempDir(), "stats.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE requests (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		email       TEXT,
		resource_id TEXT,
		timestamp   REAL,
		count       INTEGER
	)`)
	require.NoError(t, err)

	insert := func(resourceID string, ts time.Time, count any) {
		_, err := db.Exec(`INSERT INTO requests (email, resource_id, timestamp, count) VALUES (?, ?, ?, ?)`,
			"someone@example.org", resourceID, float64(ts.Unix()), count)
		require.NoError(t, err)
	}
	// before the cutover, ignored
	insert(collectionResource, time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC), 999)
	insert(collectionResource, time.Date(2016, 2, 15, 0, 0, 0, 0, time.UTC), 30)
	insert("other-resource", time.Date(2016, 4, 2, 0, 0, 0, 0, time.UTC), nil)

	return &configs.Config{
		Log: configs.LogConfig{Level: "debug"},
		Report: configs.ReportConfig{
			Timezone:            "UTC",
			CollectionResources: configs.DefaultCollectionResources,
		},
		FileStorage: configs.FileStorageConfig{RootDir: rootDir},
		Archive:     configs.ArchiveConfig{Key: "legacy.json"},
		LiveLog:     configs.LiveLogConfig{DBPath: dbPath, BusyTimeoutMs: 1000},
		Server: configs.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       10,
			WriteTimeout:      30,
			IdleTimeout:       60,
		},
	}
}

func TestApp_RunReport(t *testing.T) {
	t.Parallel()

	config := newTestConfig(t)
	config.Metrics.TextfilePath = filepath.Join(t.TempDir(), "dataportal_stats.prom")

	var logs bytes.Buffer
	application, err := New(config, &logs)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, application.RunReport(context.Background(), models.FilterParams{}, &out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var monthRows []string
	for _, line := range lines {
		fields := strings.Fields(strings.Trim(line, "|+- "))
		if len(fields) > 0 && (fields[0] == "Jan" || fields[0] == "Feb" || fields[0] == "Apr") {
			monthRows = append(monthRows, fields[0])
		}
	}
	assert.Equal(t, []string{"Jan", "Feb", "Apr"}, monthRows)
	assert.Contains(t, out.String(), "157", "collection records total is 120 + 7 + 30")
	assert.NotContains(t, out.String(), "999")

	assert.Contains(t, logs.String(), `"run_id":"`)
	assert.FileExists(t, config.Metrics.TextfilePath)
}

func TestApp_RunReport_FilterByQuarter(t *testing.T) {
	t.Parallel()

	application, err := New(newTestConfig(t), io.Discard)
	require.NoError(t, err)

	year, quarter := 2016, 2
	var out bytes.Buffer
	require.NoError(t, application.RunReport(context.Background(),
		models.FilterParams{Year: &year, Quarter: &quarter}, &out, false))

	assert.Contains(t, out.String(), "Apr 16")
	assert.NotContains(t, out.String(), "Jan 16")
	assert.NotContains(t, out.String(), "Feb 16")
}

func TestApp_RunReport_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(c *configs.Config)
		params   func() models.FilterParams
		wantCode string
	}{
		{
			name:   "quarter without year",
			mutate: func(c *configs.Config) {},
			params: func() models.FilterParams {
				q := 1
				return models.FilterParams{Quarter: &q}
			},
			wantCode: "RPT_1000",
		},
		{
			name:     "missing archive",
			mutate:   func(c *configs.Config) { c.Archive.Key = "absent.json" },
			params:   func() models.FilterParams { return models.FilterParams{} },
			wantCode: "RPT_9000",
		},
		{
			name:     "missing live log",
			mutate:   func(c *configs.Config) { c.LiveLog.DBPath = filepath.Join(c.FileStorage.RootDir, "absent.db") },
			params:   func() models.FilterParams { return models.FilterParams{} },
			wantCode: "RPT_9002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := newTestConfig(t)
			tt.mutate(config)
			application, err := New(config, io.Discard)
			require.NoError(t, err)

			var out bytes.Buffer
			err = application.RunReport(context.Background(), tt.params(), &out, false)
			assert.Equal(t, tt.wantCode, svcerrors.CodeOf(err))
			assert.Empty(t, out.String(), "nothing is printed for a failed run")
		})
	}
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	config := newTestConfig(t)
	config.Log.Level = "loud"

	_, err := New(config, io.Discard)
	assert.Error(t, err)
}
