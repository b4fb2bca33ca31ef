package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitfund/contribmap/pkg/contributors"
)

const sampleCSV = `Country,Organization Name,Category,Search Tags,Official URL,Description
South Korea,Seoul Makers,tech - software,"open source, hardware",https://example.kr,Hardware lab
South Korea,Busan Collective,,,,
Wonderland,Rabbit Hole Society,arts - performance,tea,https://example.wl,Down the hole
`

func TestExportURL(t *testing.T) {
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123/export?format=csv",
		ExportURL("abc123"))

	// Non-ASCII and reserved characters are escaped, not passed through
	assert.NotContains(t, ExportURL("한글 id"), " ")
	assert.NotContains(t, ExportURL("a/b"), "/b")
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	client := NewClient("test-sheet")
	client.BaseURL = server.URL

	rows, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "South Korea", rows[0].Country)
	assert.Equal(t, "Seoul Makers", rows[0].Name)
	assert.Equal(t, "open source, hardware", rows[0].Tags)

	// Missing cells come back as empty strings
	assert.Equal(t, "", rows[1].Category)
	assert.Equal(t, "", rows[1].URL)
}

func TestFetchNon200Aborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("test-sheet")
	client.BaseURL = server.URL

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchTransportErrorAborts(t *testing.T) {
	client := NewClient("test-sheet")
	client.BaseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
}

func TestParseCSVIgnoresUnknownColumns(t *testing.T) {
	csvData := `Extra,Country,Organization Name
x,Japan,Tokyo Hackers
`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(csvData))
	}))
	defer server.Close()

	client := NewClient("test-sheet")
	client.BaseURL = server.URL

	rows, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Japan", rows[0].Country)
	assert.Equal(t, "Tokyo Hackers", rows[0].Name)
	assert.Equal(t, "", rows[0].Desc)
}

func TestParseCSVEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer server.Close()

	client := NewClient("test-sheet")
	client.BaseURL = server.URL

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
}

func TestGroupByCountry(t *testing.T) {
	rows := []contributors.Row{
		{Country: "Wonderland", Name: "c"},
		{Country: "South Korea", Name: "a"},
		{Country: "South Korea", Name: "b"},
	}

	groups, keys := GroupByCountry(rows)

	assert.Equal(t, []string{"South Korea", "Wonderland"}, keys)
	require.Len(t, groups["South Korea"], 2)

	// Source order is preserved inside a group
	assert.Equal(t, "a", groups["South Korea"][0].Name)
	assert.Equal(t, "b", groups["South Korea"][1].Name)
}
