// Package publish runs a full publishing pass: fetch the sheet, group
// rows by country, resolve country metadata, write per-country JSON
// files plus the index, and send the end-of-run summary notification.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/habitfund/contribmap/internal/notify"
	"github.com/habitfund/contribmap/internal/sheet"
	"github.com/habitfund/contribmap/pkg/constants"
	"github.com/habitfund/contribmap/pkg/contributors"
	"github.com/habitfund/contribmap/pkg/country"
	"github.com/habitfund/contribmap/pkg/errors"
	"github.com/habitfund/contribmap/pkg/logging"
)

// Fetcher supplies the raw sheet rows. Satisfied by sheet.Client.
type Fetcher interface {
	Fetch(ctx context.Context) ([]contributors.Row, error)
}

// Publisher wires the pipeline's collaborators together. Each run is
// fully sequential and overwrites any prior output.
type Publisher struct {
	Fetcher   Fetcher
	Resolver  *country.Resolver
	Notifier  notify.Notifier
	OutputDir string
}

// Summary is the result of a completed run.
type Summary struct {
	Countries int
	Records   int
	IndexPath string
}

// Run executes one publishing pass. A fetch or parse failure aborts
// before anything is written; a write failure aborts mid-run and may
// leave a partial set of per-country files without an index.
func (p *Publisher) Run(ctx context.Context) (*Summary, error) {
	log := logging.FromContext(ctx)

	rows, err := p.Fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p.OutputDir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", p.OutputDir, err)
	}

	groups, names := sheet.GroupByCountry(rows)

	index := make([]contributors.IndexEntry, 0, len(names))
	total := 0

	for _, name := range names {
		info := p.Resolver.Resolve(ctx, name)

		records := contributors.BuildRecords(info.Code, groups[name])
		fileName := info.Code + ".json"
		filePath := filepath.Join(p.OutputDir, fileName)

		if err := writeJSON(filePath, records); err != nil {
			return nil, err
		}

		index = append(index, contributors.IndexEntry{
			Country: info.FullName,
			Code:    info.Code,
			Flag:    info.FlagURL,
			Path:    filepath.ToSlash(filePath),
			Count:   len(records),
		})
		total += len(records)

		log.Info().
			Str("country", info.Code).
			Int("records", len(records)).
			Str("path", filePath).
			Msg("Saved country file")
	}

	indexPath := filepath.Join(p.OutputDir, constants.IndexFileName)
	if err := writeJSON(indexPath, index); err != nil {
		return nil, err
	}

	summary := &Summary{
		Countries: len(index),
		Records:   total,
		IndexPath: indexPath,
	}

	log.Info().
		Int("countries", summary.Countries).
		Int("records", summary.Records).
		Str("index", indexPath).
		Msg("Publishing run complete")

	p.Notifier.Notify(ctx, summaryMessage(summary))

	return summary, nil
}

// summaryMessage formats the end-of-run Slack message.
func summaryMessage(s *Summary) string {
	return fmt.Sprintf(
		"🚀 *HabitFund Data Update Complete*\n"+
			"• Countries: %d\n"+
			"• Total Contributors: %d\n"+
			"• Index File: `%s` created successfully.",
		s.Countries, s.Records, filepath.ToSlash(s.IndexPath))
}

// writeJSON writes v as indented UTF-8 JSON. HTML escaping is off so
// non-ASCII names and URLs with ampersands come out literally.
func writeJSON(path string, v any) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		_ = file.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := file.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
