package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ### Start - fixed configs (no change)
// These values define deterministic fixtures and must match expected results.
const (
	collectionResource = "bb909597-dedf-427d-8c04-4c02b3a24db3"
	otherResource      = "3a0e1b54-1f0c-4a57-9b4f-5d37c1f0e2aa"
	rowsPerMonth       = 10
	archiveMonths      = 6 // Jan..Jun 2016 live in the archive
	liveMonths         = 6 // Jun..Nov 2016 live in the request log
	staleLiveCount     = 1000
	liveCount          = 5
)

// ### End - fixed configs

type archiveRow struct {
	Date       string `json:"date"`
	ResourceID string `json:"resource_id"`
	Count      *int64 `json:"count,omitempty"`
}

type reportResponse struct {
	Months []struct {
		Year    int              `json:"year"`
		Month   int              `json:"month"`
		Label   string           `json:"label"`
		Metrics map[string]int64 `json:"metrics"`
	} `json:"months"`
	Totals map[string]int64 `json:"totals"`
}

type query struct {
	name       string
	rawQuery   string
	wantStatus int
	wantMonths []string
}

// main runs the e2e scenario: 001_archive_live_cutover
//
// It writes a historical archive and a live request log that overlap in June
// 2016, then queries a running `dataportal-stats serve` concurrently.
//
// Start the server against the generated fixtures with:
//
//	DPSTATS_FILE_STORAGE_ROOT_DIR=.tmp/e2e DPSTATS_LIVE_LOG_DB_PATH=.tmp/e2e/stats.db dataportal-stats serve
//
// What it tests:
//   - Archive rows and live rows land in the same month buckets
//   - Live rows at or before the last archive timestamp are ignored
//   - Year and quarter filters, including two-digit years
//   - Invalid filters return 400
//   - Concurrent report runs return identical results
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the dataportal-stats server
	fixtureDir := ".tmp/e2e"           // Fixture directory relative to the project root
	parallel := 4                      // Concurrent requests per query
	generateOnly := len(os.Args) > 1 && os.Args[1] == "-generate"

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fixturePath := filepath.Join(projectRoot, fixtureDir)

	fmt.Println("Starting e2e scenario: 001_archive_live_cutover")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("FIXTURE_PATH: %s\n", fixturePath)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	expected, err := writeFixtures(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write fixtures: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Fixtures written, expected collection records total: %d\n", expected["collection_records"])
	if generateOnly {
		return
	}

	queries := []query{
		{name: "all", wantStatus: http.StatusOK, wantMonths: monthLabels(1, 11)},
		{name: "year 16", rawQuery: "year=16", wantStatus: http.StatusOK, wantMonths: monthLabels(1, 11)},
		{name: "2016 Q2", rawQuery: "year=2016&quarter=2", wantStatus: http.StatusOK, wantMonths: monthLabels(4, 6)},
		{name: "2016 Q4", rawQuery: "year=2016&quarter=4", wantStatus: http.StatusOK, wantMonths: monthLabels(10, 11)},
		{name: "2015", rawQuery: "year=2015", wantStatus: http.StatusOK, wantMonths: []string{}},
		{name: "quarter without year", rawQuery: "quarter=1", wantStatus: http.StatusBadRequest},
		{name: "quarter out of range", rawQuery: "year=2016&quarter=7", wantStatus: http.StatusBadRequest},
	}

	client := &http.Client{Timeout: 30 * time.Second}
	failures := 0
	for _, q := range queries {
		if err := runQuery(client, baseURL, q, parallel, expected); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", q.name, err)
			failures++
			continue
		}
		fmt.Printf("PASS %s\n", q.name)
	}

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d queries failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

// writeFixtures recreates legacy.json and stats.db and returns the expected
// unfiltered totals.
func writeFixtures(dir string) (map[string]int64, error) {
	if err := os.RemoveAll(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	expected := map[string]int64{}
	rows := make([]archiveRow, 0, archiveMonths*rowsPerMonth*2)
	for month := 1; month <= archiveMonths; month++ {
		for day := 1; day <= rowsPerMonth; day++ {
			count := int64(month*10 + day)
			date := time.Date(2016, time.Month(month), day, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)
			rows = append(rows,
				archiveRow{Date: date, ResourceID: collectionResource, Count: &count},
				archiveRow{Date: date, ResourceID: otherResource},
			)
			expected["collection_records"] += count
			expected["collection_download_events"]++
			expected["other_download_events"]++
		}
	}
	archive, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, "legacy.json"), archive, 0o644); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "stats.db"))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE requests (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		email       TEXT,
		resource_id TEXT,
		timestamp   REAL,
		count       INTEGER
	)`); err != nil {
		return nil, err
	}

	insert := func(ts time.Time, count int64) error {
		_, err := db.Exec(`INSERT INTO requests (email, resource_id, timestamp, count) VALUES (?, ?, ?, ?)`,
			"e2e@example.org", collectionResource, float64(ts.Unix()), count)
		return err
	}

	cutover := time.Date(2016, time.Month(archiveMonths), rowsPerMonth, 12, 0, 0, 0, time.UTC)
	// already counted by the archive
	for day := 1; day <= rowsPerMonth; day++ {
		if err := insert(time.Date(2016, time.Month(archiveMonths), day, 12, 0, 0, 0, time.UTC), staleLiveCount); err != nil {
			return nil, err
		}
	}
	for i := 0; i < liveMonths; i++ {
		ts := cutover.AddDate(0, i, 1)
		if err := insert(ts, liveCount); err != nil {
			return nil, err
		}
		expected["collection_records"] += liveCount
		expected["collection_download_events"]++
	}
	return expected, nil
}

func monthLabels(from, to int) []string {
	labels := make([]string, 0, to-from+1)
	for m := from; m <= to; m++ {
		labels = append(labels, time.Date(2016, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Format("Jan 06"))
	}
	return labels
}

// runQuery sends the same query from several workers; all responses must agree.
func runQuery(client *http.Client, baseURL string, q query, parallel int, expected map[string]int64) error {
	var wg sync.WaitGroup
	responses := make([]*reportResponse, parallel)
	errs := make([]error, parallel)

	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i], errs[i] = fetchReport(client, baseURL, q)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	if q.wantStatus != http.StatusOK {
		return nil
	}

	for i := 1; i < parallel; i++ {
		if !reflect.DeepEqual(responses[0], responses[i]) {
			return fmt.Errorf("concurrent runs disagree")
		}
	}

	got := make([]string, 0, len(responses[0].Months))
	for _, m := range responses[0].Months {
		got = append(got, m.Label)
	}
	if !reflect.DeepEqual(got, q.wantMonths) {
		return fmt.Errorf("months = %v, want %v", got, q.wantMonths)
	}

	if q.rawQuery == "" {
		for metric, want := range expected {
			if responses[0].Totals[metric] != want {
				return fmt.Errorf("total %s = %d, want %d", metric, responses[0].Totals[metric], want)
			}
		}
	}
	return nil
}

func fetchReport(client *http.Client, baseURL string, q query) (*reportResponse, error) {
	url := baseURL + "/reports/downloads"
	if q.rawQuery != "" {
		url += "?" + q.rawQuery
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != q.wantStatus {
		return nil, fmt.Errorf("HTTP %d, want %d", resp.StatusCode, q.wantStatus)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var report reportResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
