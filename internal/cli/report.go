package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"artist-analytics/internal/config"
	ports "artist-analytics/internal/core/ports/output"
	"artist-analytics/internal/core/services"
)

type reportOptions struct {
	clientID     string
	clientSecret string
	market       string
	asJSON       bool
	timeout      time.Duration
}

func newReportCommand(cfg *config.Config, connector ports.CatalogConnector) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report [artist name]",
		Short: "Print statistics for an artist",
		Long: `Look up an artist and print their followers, popularity and top tracks,
their latest album, a list of popular artists and details about one of them
picked at random.

Without an artist name the configured default artist is used.`,
		Example: `  artistctl report
  artistctl report Phoebe Bridgers
  artistctl report --json --market SE "First Aid Kit"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, cfg, connector, opts)
		},
	}

	cmd.Flags().StringVar(&opts.clientID, "client-id", "", "Spotify client id (default $SPOTIFY_CLIENT_ID)")
	cmd.Flags().StringVar(&opts.clientSecret, "client-secret", "", "Spotify client secret (default $SPOTIFY_CLIENT_SECRET)")
	cmd.Flags().StringVar(&opts.market, "market", "", "ISO 3166-1 alpha-2 market for top tracks and albums (default $SPOTIFY_MARKET)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Overall deadline for the lookups")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, cfg *config.Config, connector ports.CatalogConnector, opts reportOptions) error {
	creds := ports.Credentials{
		ClientID:     firstNonEmpty(opts.clientID, cfg.Spotify.ClientID),
		ClientSecret: firstNonEmpty(opts.clientSecret, cfg.Spotify.ClientSecret),
	}
	if !creds.Complete() {
		var err error
		creds, err = promptCredentials(cmd.InOrStdin(), cmd.ErrOrStderr(), creds)
		if err != nil {
			return err
		}
	}

	svcOpts := services.OptionsFromConfig(cfg)
	svcOpts.DefaultCredentials = creds
	svcOpts.AlbumOptional = true
	svc := services.NewAnalyticsService(connector, svcOpts)

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	report, err := svc.Analyze(ctx, services.AnalyticsRequest{
		ArtistName: strings.Join(args, " "),
		Market:     opts.market,
	})
	if err != nil {
		return err
	}

	if opts.asJSON {
		return RenderJSON(cmd.OutOrStdout(), report)
	}
	return RenderText(cmd.OutOrStdout(), report)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
