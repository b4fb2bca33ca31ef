// Package contributors defines the output data model of a publishing
// run: per-country contributor records and the summary index entries,
// plus the helpers that shape raw sheet cells into record fields.
package contributors

import (
	"fmt"
	"strings"

	"github.com/habitfund/contribmap/pkg/constants"
)

// Record is one contributor organization in a per-country output file.
// Records are immutable once built; one is created per source row.
type Record struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Country  string   `json:"country"`
	Tags     []string `json:"tags"`
	URL      string   `json:"url"`
	Desc     string   `json:"desc"`
}

// IndexEntry summarizes one country group in the index file. Count
// always equals the number of records in the referenced file.
type IndexEntry struct {
	Country string `json:"country"`
	Code    string `json:"code"`
	Flag    string `json:"flag"`
	Path    string `json:"path"`
	Count   int    `json:"count"`
}

// Row is one raw sheet row, keyed by the source columns the builder
// reads. Missing cells are empty strings, never absent keys.
type Row struct {
	Country  string
	Name     string
	Category string
	Tags     string
	URL      string
	Desc     string
}

// RecordID builds the deterministic record identifier for the i-th row
// (zero-based) of a country group, e.g. RecordID("kr", 0) == "kr_001".
func RecordID(code string, i int) string {
	return fmt.Sprintf("%s_%0*d", code, constants.RecordIDWidth, i+1)
}

// CleanCategory extracts the key from a "key - description" category
// cell: the segment before the first literal " - " separator, trimmed.
func CleanCategory(val string) string {
	if val == "" {
		return ""
	}
	head, _, _ := strings.Cut(val, " - ")
	return strings.TrimSpace(head)
}

// SplitTags splits a comma-delimited tag cell into trimmed tags. A
// blank cell yields an empty, non-nil slice so it marshals as [] rather
// than null or [""].
func SplitTags(val string) []string {
	if val == "" {
		return []string{}
	}
	parts := strings.Split(val, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// BuildRecords shapes a country group's rows into records. Rows keep
// their source order; the country field is the group's code uppercased.
func BuildRecords(code string, rows []Row) []Record {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		records = append(records, Record{
			ID:       RecordID(code, i),
			Name:     row.Name,
			Category: CleanCategory(row.Category),
			Country:  strings.ToUpper(code),
			Tags:     SplitTags(row.Tags),
			URL:      row.URL,
			Desc:     row.Desc,
		})
	}
	return records
}
