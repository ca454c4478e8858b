package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dataportal-stats/internal/models"
	"dataportal-stats/internal/shared/filestorages"
)

// archiveDateLayouts are tried in order. Layouts without a zone are read in the
// archive's location.
var archiveDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"02 January 2006",
	"2 January 2006",
	"January 2, 2006",
	"02/01/2006",
}

// ArchiveStore reads the historical download archive: a JSON array of
// {"date": "...", "resource_id": "...", "count": N} rows exported before
// download counts were kept in the live log.
//
//go:generate mockgen -source=archive_store.go -destination=./mocks/archive_store_mock.go -package=mocks
type ArchiveStore interface {
	// Events returns every archive row in file order.
	Events(ctx context.Context) ([]models.Event, error)
}

type archiveStore struct {
	fileStorage filestorages.FileStorage
	key         string
	loc         *time.Location
}

func NewArchiveStore(fileStorage filestorages.FileStorage, key string, loc *time.Location) ArchiveStore {
	if loc == nil {
		loc = time.UTC
	}
	return &archiveStore{fileStorage: fileStorage, key: key, loc: loc}
}

func (s *archiveStore) Events(ctx context.Context) ([]models.Event, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, s.key)
		}
		return nil, fmt.Errorf("failed to open archive %s: %w", s.key, err)
	}
	defer readCloser.Close()

	dec := json.NewDecoder(readCloser)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrArchiveMalformed)
	}

	var events []models.Event
	for index := 0; dec.More(); index++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrArchiveMalformed, index, err)
		}
		event, err := s.jsonObjectToEvent(obj, index)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveMalformed, err)
	}
	return events, nil
}

// jsonObjectToEvent converts one archive row to an Event.
func (s *archiveStore) jsonObjectToEvent(obj map[string]any, index int) (models.Event, error) {
	var event models.Event

	if obj == nil {
		return event, fmt.Errorf("%w: row %d: not an object", ErrArchiveMalformed, index)
	}

	// Parse date
	dateVal, ok := obj["date"]
	if !ok || dateVal == nil {
		return event, fmt.Errorf("%w: row %d: missing date", ErrArchiveMalformed, index)
	}
	dateStr, ok := dateVal.(string)
	if !ok {
		return event, fmt.Errorf("%w: row %d: date must be a string", ErrArchiveMalformed, index)
	}
	ts, err := s.parseDate(dateStr)
	if err != nil {
		return event, fmt.Errorf("%w: row %d: %v", ErrArchiveMalformed, index, err)
	}
	event.Timestamp = ts

	// Parse resource_id
	if resourceVal, ok := obj["resource_id"]; ok && resourceVal != nil {
		resourceID, ok := resourceVal.(string)
		if !ok {
			return event, fmt.Errorf("%w: row %d: resource_id must be a string", ErrArchiveMalformed, index)
		}
		event.ResourceID = resourceID
	}

	// Parse count
	if countVal, ok := obj["count"]; ok && countVal != nil {
		num, ok := countVal.(json.Number)
		if !ok {
			return event, fmt.Errorf("%w: row %d: count must be a number", ErrArchiveMalformed, index)
		}
		count, err := num.Int64()
		if err != nil {
			return event, fmt.Errorf("%w: row %d: count must be an integer", ErrArchiveMalformed, index)
		}
		if count < 0 {
			return event, fmt.Errorf("%w: row %d: count must not be negative", ErrArchiveMalformed, index)
		}
		event.Count = &count
	}

	return event, nil
}

func (s *archiveStore) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range archiveDateLayouts {
		if ts, err := time.ParseInLocation(layout, value, s.loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}
