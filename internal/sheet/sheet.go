// Package sheet fetches the contributor spreadsheet as CSV and groups
// its rows by country.
package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/habitfund/contribmap/pkg/constants"
	"github.com/habitfund/contribmap/pkg/contributors"
	"github.com/habitfund/contribmap/pkg/errors"
	"github.com/habitfund/contribmap/pkg/logging"
)

// Source column headers as published by the sheet.
const (
	colCountry  = "Country"
	colName     = "Organization Name"
	colCategory = "Category"
	colTags     = "Search Tags"
	colURL      = "Official URL"
	colDesc     = "Description"
)

// ExportURL builds the CSV export URL for a published Google Sheet.
// The sheet ID is path-escaped so non-ASCII IDs cannot break the URL.
func ExportURL(sheetID string) string {
	return fmt.Sprintf(constants.SheetExportURLFormat, url.PathEscape(sheetID))
}

// Client fetches and parses the contributor sheet.
type Client struct {
	SheetID string
	HTTP    *http.Client

	// BaseURL overrides the computed export URL, for tests.
	BaseURL string
}

// NewClient creates a sheet client for the given sheet ID.
func NewClient(sheetID string) *Client {
	return &Client{
		SheetID: sheetID,
		HTTP:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
}

// Fetch downloads the sheet CSV and parses it into rows. Any transport,
// status, or parse failure aborts the run; nothing is retried.
func (c *Client) Fetch(ctx context.Context) ([]contributors.Row, error) {
	fetchURL := c.BaseURL
	if fetchURL == "" {
		fetchURL = ExportURL(c.SheetID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, errors.WrapFetch("sheet", fetchURL, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.WrapFetch("sheet", fetchURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.FetchError{
			Resource:   "sheet",
			URL:        fetchURL,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	rows, err := parseCSV(resp.Body)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Int("rows", len(rows)).
		Msg("Fetched sheet")
	return rows, nil
}

// parseCSV reads header-mapped rows. Unknown columns are ignored,
// missing cells become empty strings, and variable-width records are
// tolerated.
func parseCSV(r io.Reader) ([]contributors.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", "sheet export", err)
	}
	if len(records) == 0 {
		return nil, errors.WrapParse("csv", "sheet export", errors.New("no header row"))
	}

	index := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		index[strings.TrimSpace(header)] = i
	}

	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]contributors.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, contributors.Row{
			Country:  cell(record, colCountry),
			Name:     cell(record, colName),
			Category: cell(record, colCategory),
			Tags:     cell(record, colTags),
			URL:      cell(record, colURL),
			Desc:     cell(record, colDesc),
		})
	}
	return rows, nil
}

// GroupByCountry groups rows by their Country cell. Rows keep their
// source order within a group; group keys come back sorted so output
// order is stable across runs.
func GroupByCountry(rows []contributors.Row) (map[string][]contributors.Row, []string) {
	groups := make(map[string][]contributors.Row)
	for _, row := range rows {
		groups[row.Country] = append(groups[row.Country], row)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return groups, keys
}
