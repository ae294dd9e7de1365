package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hnormak/spotify-cli/internal/app/services/library"
	"github.com/hnormak/spotify-cli/internal/ui"
)

func newTopArtistsCommand(a *app) *cobra.Command {
	var timeRange string
	var limit int

	cmd := &cobra.Command{
		Use:   "get-top-artists",
		Short: "Show your most played artists and their genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.service.TopArtists(cmd.Context(), timeRange, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.TopHeader(result.DisplayName, result.TimeRange, "artists"))
			fmt.Fprintln(out)

			if len(result.Artists) == 0 {
				fmt.Fprintln(out, "No top artists found.")
				return nil
			}
			for i, artist := range result.Artists {
				fmt.Fprintln(out, ui.ArtistLine(i+1, artist))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timeRange, "time-range", library.DefaultTimeRange, "Time range of results: short_term, medium_term or long_term")
	cmd.Flags().IntVar(&limit, "limit", library.DefaultLimit, "Amount of results shown (max 50)")

	return cmd
}
