package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hnormak/spotify-cli/internal/app/services/library"
	"github.com/hnormak/spotify-cli/internal/ui"
)

func newSearchCommand(a *app) *cobra.Command {
	var artist string
	var track string
	var limit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search Spotify for artists or tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch {
			case strings.TrimSpace(track) != "":
				tracks, err := a.service.SearchTracks(cmd.Context(), track, limit)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.SearchHeader(track))
				fmt.Fprintln(out)
				if len(tracks) == 0 {
					fmt.Fprintln(out, "No results found.")
					return nil
				}
				for i, t := range tracks {
					fmt.Fprintln(out, ui.SearchTrackLine(i+1, t))
				}

			case strings.TrimSpace(artist) != "":
				artists, err := a.service.SearchArtists(cmd.Context(), artist, limit)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.SearchHeader(artist))
				fmt.Fprintln(out)
				if len(artists) == 0 {
					fmt.Fprintln(out, "No results found.")
					return nil
				}
				for i, ar := range artists {
					fmt.Fprintln(out, ui.ArtistLine(i+1, ar))
				}

			default:
				fmt.Fprintln(out, "Nothing to search for. Pass --artist or --track.")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Artist to search for")
	cmd.Flags().StringVar(&track, "track", "", "Track to search for")
	cmd.Flags().IntVar(&limit, "limit", library.DefaultSearchLimit, "Amount of results shown (max 50)")

	return cmd
}
