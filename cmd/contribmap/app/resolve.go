package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habitfund/contribmap/internal/notify"
	"github.com/habitfund/contribmap/pkg/country"
	"github.com/habitfund/contribmap/pkg/logging"
)

// NewResolveCommand creates the resolve command, which normalizes a
// single country name and prints the result. With --notify, a fallback
// resolution also posts the warning to the configured webhook, which
// doubles as a webhook smoke test.
func (a *App) NewResolveCommand() *cobra.Command {
	var sendNotification bool

	cmd := &cobra.Command{
		Use:   "resolve <country-name>",
		Short: "Resolve a country name to its code, full name, and flag URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.Logger())

			var notifier country.Notifier
			if sendNotification {
				notifier = notify.NewSlack(a.config.WebhookURL)
			}

			resolver, err := a.newResolver(notifier)
			if err != nil {
				return err
			}

			info := resolver.Resolve(ctx, args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "code: %s\n", info.Code)
			fmt.Fprintf(out, "name: %s\n", info.FullName)
			fmt.Fprintf(out, "flag: %s\n", info.FlagURL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sendNotification, "notify", false, "post the fallback warning to the configured webhook")
	cmd.Flags().StringVar(&a.config.ExceptionsFile, "exceptions", a.config.ExceptionsFile, "YAML file overlaying the country exception table")

	return cmd
}
