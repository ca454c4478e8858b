package stores

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestRow struct {
	resourceID any
	timestamp  float64
	count      any
}

func newTestLiveLog(t *testing.T, rows ...requestRow) string {
	t.Helper()

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

	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO requests (email, resource_id, timestamp, count) VALUES (?, ?, ?, ?)`,
			"someone@example.org", r.resourceID, r.timestamp, r.count)
		require.NoError(t, err)
	}
	return dbPath
}

func TestLiveLogStore_EventsAfter_Cutover(t *testing.T) {
	t.Parallel()

	dbPath := newTestLiveLog(t,
		requestRow{resourceID: "a", timestamp: 251, count: 10},
		requestRow{resourceID: "b", timestamp: 250, count: 5},
		requestRow{resourceID: "c", timestamp: 100, count: nil},
		requestRow{resourceID: "d", timestamp: 250.5, count: 0},
	)
	store := NewLiveLogStore(dbPath, 1000)

	events, err := store.EventsAfter(context.Background(), time.Unix(250, 0), true)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "d", events[0].ResourceID)
	assert.Equal(t, time.Unix(250, 500_000_000).UTC(), events[0].Timestamp)
	assert.Nil(t, events[0].Count, "zero count is treated as absent")

	assert.Equal(t, "a", events[1].ResourceID)
	assert.Equal(t, time.Unix(251, 0).UTC(), events[1].Timestamp)
	require.NotNil(t, events[1].Count)
	assert.Equal(t, int64(10), *events[1].Count)
}

func TestLiveLogStore_EventsAfter_FractionalCutover(t *testing.T) {
	t.Parallel()

	// 2016-05-01T10:00:00Z is 1462096800
	dbPath := newTestLiveLog(t,
		requestRow{resourceID: "at-cutover", timestamp: 1462096800.123, count: 7},
		requestRow{resourceID: "after-cutover", timestamp: 1462096800.124, count: 3},
	)
	cutover := time.Date(2016, 5, 1, 10, 0, 0, 123_000_000, time.UTC)

	events, err := NewLiveLogStore(dbPath, 1000).EventsAfter(context.Background(), cutover, true)
	require.NoError(t, err)
	require.Len(t, events, 1, "a row stored at the cutover instant belongs to the archive")
	assert.Equal(t, "after-cutover", events[0].ResourceID)
	assert.WithinDuration(t, cutover.Add(time.Millisecond), events[0].Timestamp, time.Microsecond)
}

func TestLiveLogStore_EventsAfter_MillisecondCutovers(t *testing.T) {
	t.Parallel()

	start := time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]requestRow, 0, 500)
	cutovers := make([]time.Time, 0, 500)
	for i := 0; i < 500; i++ {
		ts := start.Add(time.Duration(i)*(137*time.Hour+time.Second) + time.Duration(i%1000)*time.Millisecond)
		cutovers = append(cutovers, ts)
		// the REAL value a writer would store for this instant: seconds.millis
		stored, err := strconv.ParseFloat(fmt.Sprintf("%d.%03d", ts.Unix(), ts.Nanosecond()/1e6), 64)
		require.NoError(t, err)
		rows = append(rows, requestRow{resourceID: "r", timestamp: stored, count: 1})
	}
	dbPath := newTestLiveLog(t, rows...)
	store := NewLiveLogStore(dbPath, 1000)

	for i, cutover := range cutovers {
		events, err := store.EventsAfter(context.Background(), cutover, true)
		require.NoError(t, err)
		require.Len(t, events, len(cutovers)-i-1, "cutover %s", cutover.Format(time.RFC3339Nano))
	}
}

func TestLiveLogStore_EventsAfter_NoCutoverReturnsAll(t *testing.T) {
	t.Parallel()

	dbPath := newTestLiveLog(t,
		requestRow{resourceID: "a", timestamp: 300, count: 1},
		requestRow{resourceID: nil, timestamp: 100, count: nil},
	)

	events, err := NewLiveLogStore(dbPath, 1000).EventsAfter(context.Background(), time.Time{}, false)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "", events[0].ResourceID)
	assert.Nil(t, events[0].Count)
	assert.Equal(t, "a", events[1].ResourceID)
}

func TestLiveLogStore_EventsAfter_EmptyTable(t *testing.T) {
	t.Parallel()

	events, err := NewLiveLogStore(newTestLiveLog(t), 1000).EventsAfter(context.Background(), time.Unix(1, 0), true)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLiveLogStore_EventsAfter_MissingDatabase(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "stats.db")
	_, err := NewLiveLogStore(dbPath, 1000).EventsAfter(context.Background(), time.Time{}, false)
	assert.ErrorIs(t, err, ErrLiveStoreUnavailable)
	assert.NoFileExists(t, dbPath, "a missing database must not be created")
}

func TestLiveLogStore_EventsAfter_DirectoryPath(t *testing.T) {
	t.Parallel()

	_, err := NewLiveLogStore(t.TempDir(), 1000).EventsAfter(context.Background(), time.Time{}, false)
	assert.ErrorIs(t, err, ErrLiveStoreUnavailable)
}

func TestLiveLogStore_EventsAfter_MissingTable(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "stats.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (id INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewLiveLogStore(dbPath, 1000).EventsAfter(context.Background(), time.Time{}, false)
	assert.ErrorIs(t, err, ErrLiveQueryFailed)
}

func TestLiveLogStore_EventsAfter_NegativeCount(t *testing.T) {
	t.Parallel()

	dbPath := newTestLiveLog(t, requestRow{resourceID: "a", timestamp: 10, count: -1})

	_, err := NewLiveLogStore(dbPath, 1000).EventsAfter(context.Background(), time.Time{}, false)
	assert.ErrorIs(t, err, ErrLiveQueryFailed)
}

func TestEpochSecondsRoundTrip(t *testing.T) {
	t.Parallel()

	ts := time.Date(2016, 5, 17, 9, 30, 15, 0, time.UTC)
	assert.Equal(t, ts, fromEpochSeconds(toEpochSeconds(ts)))

	fractional := time.Date(2016, 5, 1, 10, 0, 0, 123_000_000, time.UTC)
	assert.Equal(t, 1462096800.123, toEpochSeconds(fractional))
	assert.WithinDuration(t, fractional, fromEpochSeconds(toEpochSeconds(fractional)), time.Microsecond)
}
