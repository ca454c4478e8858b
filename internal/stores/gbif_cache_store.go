package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"dataportal-stats/internal/models"
	"dataportal-stats/internal/shared/filestorages"
)

// GBIFCacheEntry is the cached monthly download activity of one GBIF dataset.
//
// Example JSON:
//
//	{
//	  "datasetKey": "7e380070-f762-11e1-a439-00145eb45e9a",
//	  "fetchedAt": "2016-05-17T09:30:00Z",
//	  "months": [
//	    {"year": 2016, "month": 1, "downloadEvents": 42, "records": 1203344},
//	    {"year": 2016, "month": 2, "downloadEvents": 17, "records": 88210}
//	  ]
//	}
type GBIFCacheEntry struct {
	DatasetKey string                    `json:"datasetKey"`
	FetchedAt  time.Time                 `json:"fetchedAt"`
	Months     []models.MonthlyDownloads `json:"months"`
}

// Fresh reports whether the entry is younger than ttl at now.
func (e *GBIFCacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) < ttl
}

//go:generate mockgen -source=gbif_cache_store.go -destination=./mocks/gbif_cache_store_mock.go -package=mocks
type GBIFCacheStore interface {
	Upsert(ctx context.Context, entry *GBIFCacheEntry) error
	// Get returns (nil, false, nil) when nothing is cached for datasetKey.
	Get(ctx context.Context, datasetKey string) (*GBIFCacheEntry, bool, error)
}

type gbifCacheStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewGBIFCacheStore(fileStorage filestorages.FileStorage) GBIFCacheStore {
	return &gbifCacheStore{fileStorage: fileStorage, dir: "gbif"}
}

func (s *gbifCacheStore) Upsert(ctx context.Context, entry *GBIFCacheEntry) error {
	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal gbif cache entry: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	_, err = s.fileStorage.Put(ctx, s.getKey(entry.DatasetKey), reader, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put gbif cache entry: %w", err)
	}
	return nil
}

func (s *gbifCacheStore) Get(ctx context.Context, datasetKey string) (*GBIFCacheEntry, bool, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(datasetKey))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get gbif cache entry: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read gbif cache entry: %w", err)
	}
	var entry GBIFCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal gbif cache entry: %w", err)
	}
	return &entry, true, nil
}

func (s *gbifCacheStore) getKey(datasetKey string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, datasetKey)
}
