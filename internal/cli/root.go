package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"artist-analytics/internal/config"
	ports "artist-analytics/internal/core/ports/output"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// NewRootCommand builds the artistctl command tree on top of the given
// configuration and catalog connector.
func NewRootCommand(cfg *config.Config, connector ports.CatalogConnector) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "artistctl",
		Short: "Spotify artist analytics from the terminal",
		Long: `artistctl prints statistics about an artist using the Spotify Web API:
followers, popularity, top tracks, the latest album and a random pick from
the artists behind this week's new releases.

Credentials are read from --client-id/--client-secret, then from
SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET, and are prompted for otherwise.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			log.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel(cfg), "Log level (debug, info, warn, error)")
	root.AddCommand(newReportCommand(cfg, connector))

	return root
}

// defaultLogLevel keeps the CLI at warn unless debug is configured.
func defaultLogLevel(cfg *config.Config) string {
	if cfg.Logger.Level == "debug" {
		return "debug"
	}
	return "warn"
}
