package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hnormak/spotify-cli/internal/app/services/library"
	"github.com/hnormak/spotify-cli/internal/config"
	internalSpotify "github.com/hnormak/spotify-cli/internal/infra/repository/spotify"
)

type app struct {
	verbose bool
	client  library.MusicClient
	service library.LibraryService
}

// NewRootCommand wires the CLI. A non-nil client bypasses the
// environment-based setup, which keeps the commands testable without
// credentials or network access.
func NewRootCommand(client library.MusicClient) *cobra.Command {
	a := &app{client: client}

	rootCmd := &cobra.Command{
		Use:   "spotify-cli",
		Short: "Inspect your Spotify listening habits from the terminal",
		Long: `spotify-cli talks to the Spotify Web API to show your top tracks,
top artists and search results.

Time ranges map to listening windows: short_term is the last four weeks,
medium_term the last six months and long_term is all time.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug-level logging")

	rootCmd.AddCommand(
		newTopTracksCommand(a),
		newTopArtistsCommand(a),
		newSearchCommand(a),
	)

	return rootCmd
}

// Execute runs the CLI. Any failure is logged with its cause and the
// process exits non-zero.
func Execute() {
	rootCmd := NewRootCommand(nil)
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.client == nil {
		cfg, err := config.Load()
		if err != nil {
			// No network call has happened yet; missing credentials fail here.
			return fmt.Errorf("%w: %s", internalSpotify.ErrAuthentication, err.Error())
		}
		configureLogging(cfg, a.verbose)
		a.client = internalSpotify.New(cfg)
	} else if a.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	a.service = library.New(a.client)
	return nil
}

func configureLogging(cfg *config.Config, verbose bool) {
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
