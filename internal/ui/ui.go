// Package ui renders ranked result lines and headlines for the terminal.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hnormak/spotify-cli/internal/models"
)

var (
	rankStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	headerStyle = lipgloss.NewStyle().Italic(true)
)

// DurationToClock converts a millisecond duration to "m:ss". Sub-second
// remainders are truncated and seconds are always two digits.
func DurationToClock(ms int) string {
	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

func TrackLine(rank int, track models.Track) string {
	return fmt.Sprintf("%s - %s by %s (%s)",
		rankStyle.Render(strconv.Itoa(rank)), track.Name, track.Artist, DurationToClock(track.DurationMS))
}

func SearchTrackLine(rank int, track models.Track) string {
	return fmt.Sprintf("%s - %s by %s",
		rankStyle.Render(strconv.Itoa(rank)), track.Name, track.Artist)
}

func ArtistLine(rank int, artist models.Artist) string {
	return fmt.Sprintf("%s - %s - %s",
		rankStyle.Render(strconv.Itoa(rank)), artist.Name, Genres(artist.Genres))
}

// Genres joins an artist's genres for display.
func Genres(genres []string) string {
	if len(genres) == 0 {
		return "No genres found"
	}
	return strings.Join(genres, ", ")
}

// TopHeader is the first line of the top-tracks and top-artists output.
func TopHeader(displayName, timeRange, kind string) string {
	var window string
	switch timeRange {
	case "short_term":
		window = "in the last month"
	case "long_term":
		window = "of all time"
	default:
		window = "in the last six months"
	}
	return headerStyle.Render(fmt.Sprintf("Displaying %s's top %s %s!", displayName, kind, window))
}

func SearchHeader(query string) string {
	return fmt.Sprintf("Results for %s:", nameStyle.Render(fmt.Sprintf("%q", query)))
}
