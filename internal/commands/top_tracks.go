package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hnormak/spotify-cli/internal/app/services/library"
	"github.com/hnormak/spotify-cli/internal/ui"
)

func newTopTracksCommand(a *app) *cobra.Command {
	var timeRange string
	var limit int

	cmd := &cobra.Command{
		Use:   "get-top-tracks",
		Short: "Show your most played tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.service.TopTracks(cmd.Context(), timeRange, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.TopHeader(result.DisplayName, result.TimeRange, "tracks"))
			fmt.Fprintln(out)

			if len(result.Tracks) == 0 {
				fmt.Fprintln(out, "No top tracks found.")
				return nil
			}
			for i, track := range result.Tracks {
				fmt.Fprintln(out, ui.TrackLine(i+1, track))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timeRange, "time-range", library.DefaultTimeRange, "Time range of results: short_term, medium_term or long_term")
	cmd.Flags().IntVar(&limit, "limit", library.DefaultLimit, "Amount of results shown (max 50)")

	return cmd
}
