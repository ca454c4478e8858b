package gbif

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dataportal-stats/internal/models"
	"dataportal-stats/internal/shared/loggers"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected gbif response status")
	ErrInvalidResponse  = errors.New("invalid gbif response")
)

// maxPages bounds pagination in case the API never reports endOfRecords.
const maxPages = 10000

var createdLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	time.RFC3339Nano,
}

// downloadUsagePage mirrors one page of
// GET /occurrence/download/dataset/{datasetKey}.
type downloadUsagePage struct {
	Offset       int             `json:"offset"`
	Limit        int             `json:"limit"`
	EndOfRecords bool            `json:"endOfRecords"`
	Results      []downloadUsage `json:"results"`
}

type downloadUsage struct {
	DownloadKey   string `json:"downloadKey"`
	NumberRecords int64  `json:"numberRecords"`
	Download      struct {
		Key     string `json:"key"`
		Created string `json:"created"`
	} `json:"download"`
}

// Client fetches the download activity of a GBIF dataset, summarised per month.
//
//go:generate mockgen -source=client.go -destination=./mocks/client_mock.go -package=mocks
type Client interface {
	DatasetDownloads(ctx context.Context, datasetKey string) ([]models.MonthlyDownloads, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
	loc        *time.Location
}

func NewClient(httpClient *http.Client, baseURL string, pageSize int, loc *time.Location) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if loc == nil {
		loc = time.UTC
	}
	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageSize:   pageSize,
		loc:        loc,
	}
}

func (c *client) DatasetDownloads(ctx context.Context, datasetKey string) ([]models.MonthlyDownloads, error) {
	logger := loggers.Ctx(ctx)

	summary := newMonthlySummary()
	offset := 0
	for page := 0; page < maxPages; page++ {
		logger.Debug().Str(loggers.FieldDatasetKey, datasetKey).Int("offset", offset).Msg("fetching gbif download page")

		p, err := c.fetchPage(ctx, datasetKey, offset)
		if err != nil {
			metricPagesFetchedTotal.WithLabelValues(resultError).Inc()
			return nil, err
		}
		metricPagesFetchedTotal.WithLabelValues(resultOK).Inc()

		for i, usage := range p.Results {
			created, err := c.parseCreated(usage.Download.Created)
			if err != nil {
				return nil, fmt.Errorf("%w: result %d at offset %d: %v", ErrInvalidResponse, i, offset, err)
			}
			summary.add(created, usage.NumberRecords)
		}

		if p.EndOfRecords || len(p.Results) == 0 {
			return summary.months(), nil
		}
		offset += len(p.Results)
	}
	return nil, fmt.Errorf("%w: more than %d pages", ErrInvalidResponse, maxPages)
}

func (c *client) fetchPage(ctx context.Context, datasetKey string, offset int) (*downloadUsagePage, error) {
	u := fmt.Sprintf("%s/occurrence/download/dataset/%s?%s", c.baseURL, url.PathEscape(datasetKey), url.Values{
		"offset": []string{strconv.Itoa(offset)},
		"limit":  []string{strconv.Itoa(c.pageSize)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build gbif request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call gbif: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var page downloadUsagePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &page, nil
}

func (c *client) parseCreated(value string) (time.Time, error) {
	for _, layout := range createdLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.In(c.loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised created date %q", value)
}
