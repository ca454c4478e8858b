package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"time"

	"dataportal-stats/internal/models"

	_ "modernc.org/sqlite"
)

const (
	queryAllRequests   = `SELECT resource_id, timestamp, count FROM requests ORDER BY timestamp`
	queryRequestsAfter = `SELECT resource_id, timestamp, count FROM requests WHERE timestamp > ? ORDER BY timestamp`
)

// LiveLogStore reads the download request log kept by the data portal packager
// in a SQLite database. Timestamps are epoch seconds, counts may be NULL.
//
//go:generate mockgen -source=live_log_store.go -destination=./mocks/live_log_store_mock.go -package=mocks
type LiveLogStore interface {
	// EventsAfter returns requests strictly later than cutover, or every
	// request when hasCutover is false.
	EventsAfter(ctx context.Context, cutover time.Time, hasCutover bool) ([]models.Event, error)
}

type liveLogStore struct {
	dbPath        string
	busyTimeoutMs int
}

func NewLiveLogStore(dbPath string, busyTimeoutMs int) LiveLogStore {
	return &liveLogStore{dbPath: dbPath, busyTimeoutMs: busyTimeoutMs}
}

func (s *liveLogStore) EventsAfter(ctx context.Context, cutover time.Time, hasCutover bool) ([]models.Event, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var rows *sql.Rows
	if hasCutover {
		rows, err = db.QueryContext(ctx, queryRequestsAfter, toEpochSeconds(cutover))
	} else {
		rows, err = db.QueryContext(ctx, queryAllRequests)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLiveQueryFailed, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var (
			resourceID sql.NullString
			timestamp  float64
			count      sql.NullInt64
		)
		if err := rows.Scan(&resourceID, &timestamp, &count); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLiveQueryFailed, err)
		}
		if count.Valid && count.Int64 < 0 {
			return nil, fmt.Errorf("%w: negative count %d at %v", ErrLiveQueryFailed, count.Int64, timestamp)
		}

		event := models.Event{
			Timestamp:  fromEpochSeconds(timestamp),
			ResourceID: resourceID.String,
		}
		if count.Valid && count.Int64 > 0 {
			c := count.Int64
			event.Count = &c
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLiveQueryFailed, err)
	}
	return events, nil
}

// open checks the database file exists first so that a missing log is
// reported as unavailable rather than silently created empty.
func (s *liveLogStore) open() (*sql.DB, error) {
	info, err := os.Stat(s.dbPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrLiveStoreUnavailable, s.dbPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrLiveStoreUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrLiveStoreUnavailable, s.dbPath)
	}

	dsn := s.dbPath + "?" + url.Values{
		"_pragma": []string{
			fmt.Sprintf("busy_timeout(%d)", s.busyTimeoutMs),
			"query_only(1)",
		},
	}.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLiveStoreUnavailable, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// toEpochSeconds must round to the same float64 SQLite stores for the instant,
// otherwise a live row at exactly the cutover slips past `timestamp > ?`.
// UnixNano exceeds 2^53, so it cannot be converted before dividing.
func toEpochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func fromEpochSeconds(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
}
