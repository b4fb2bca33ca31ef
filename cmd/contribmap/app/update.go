package app

import (
	"github.com/spf13/cobra"

	"github.com/habitfund/contribmap/internal/notify"
	"github.com/habitfund/contribmap/internal/publish"
	"github.com/habitfund/contribmap/internal/sheet"
	"github.com/habitfund/contribmap/pkg/country"
	"github.com/habitfund/contribmap/pkg/logging"
)

// NewUpdateCommand creates the update command, which runs a full
// publishing pass: fetch, group, resolve, write, notify.
func (a *App) NewUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch the contributor sheet and regenerate all output files",
		Long: `Update fetches the contributor spreadsheet as CSV, groups rows by
country, writes one JSON file per country plus an index file, and posts
a summary notification to the configured Slack webhook.

The sheet ID is required (GOOGLE_SHEET_ID or --sheet-id); the webhook
is optional and notifications are skipped when it is absent.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.Config()

			if err := cfg.RequireSheetID(); err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), a.Logger())
			ctx = logging.WithSheet(ctx, cfg.SheetID)

			notifier := notify.NewSlack(cfg.WebhookURL)

			resolver, err := a.newResolver(notifier)
			if err != nil {
				return err
			}

			publisher := &publish.Publisher{
				Fetcher:   sheet.NewClient(cfg.SheetID),
				Resolver:  resolver,
				Notifier:  notifier,
				OutputDir: cfg.OutputDir,
			}

			_, err = publisher.Run(ctx)
			return err
		},
	}

	cmd.Flags().StringVar(&a.config.SheetID, "sheet-id", a.config.SheetID, "Google Sheet ID to fetch (env GOOGLE_SHEET_ID)")
	cmd.Flags().StringVar(&a.config.OutputDir, "output-dir", a.config.OutputDir, "directory to write country files into")
	cmd.Flags().StringVar(&a.config.ExceptionsFile, "exceptions", a.config.ExceptionsFile, "YAML file overlaying the country exception table")

	return cmd
}

// newResolver builds the country resolver from config: built-in
// exception table, optional overlay file, and the given warning sink.
func (a *App) newResolver(notifier country.Notifier) (*country.Resolver, error) {
	opts := []country.Option{country.WithNotifier(notifier)}

	if a.config.ExceptionsFile != "" {
		overlay, err := country.LoadExceptions(a.config.ExceptionsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, country.WithExceptions(overlay))
	}

	return country.NewResolver(opts...), nil
}
