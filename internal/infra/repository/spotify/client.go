package spotify

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/hnormak/spotify-cli/internal/config"
	"github.com/hnormak/spotify-cli/internal/models"
)

// Client wraps the Spotify SDK behind typed results. Sessions are created
// lazily through the broker, so constructing a Client does no network I/O.
type Client struct {
	log    *logrus.Entry
	broker *SessionBroker
}

func New(cfg *config.Config) *Client {
	return &Client{
		log:    logrus.WithField("component", "spotify"),
		broker: NewSessionBroker(newSessionFactory(cfg)),
	}
}

func (c *Client) DisplayName(ctx context.Context) (string, error) {
	return c.broker.DisplayName(ctx)
}

func (c *Client) TopTracks(ctx context.Context, timeRange string, limit int) ([]models.Track, error) {
	sess, err := c.broker.Session(ctx, ScopeUserTopRead)
	if err != nil {
		return nil, err
	}

	page, err := sess.CurrentUsersTopTracks(ctx, spotifyLib.Timerange(timerange(timeRange)), spotifyLib.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("top tracks: %w", err)
	}

	c.log.WithField("count", len(page.Tracks)).Debug("Fetched top tracks")

	tracks := make([]models.Track, 0, len(page.Tracks))
	for _, track := range page.Tracks {
		tracks = append(tracks, decodeTrack(track))
	}
	return tracks, nil
}

func (c *Client) TopArtists(ctx context.Context, timeRange string, limit int) ([]models.Artist, error) {
	sess, err := c.broker.Session(ctx, ScopeUserTopRead)
	if err != nil {
		return nil, err
	}

	page, err := sess.CurrentUsersTopArtists(ctx, spotifyLib.Timerange(timerange(timeRange)), spotifyLib.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("top artists: %w", err)
	}

	c.log.WithField("count", len(page.Artists)).Debug("Fetched top artists")

	artists := make([]models.Artist, 0, len(page.Artists))
	for _, artist := range page.Artists {
		artists = append(artists, decodeArtist(artist))
	}
	return artists, nil
}

func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]models.Track, error) {
	sess, err := c.broker.Session(ctx, "")
	if err != nil {
		return nil, err
	}

	results, err := sess.Search(ctx, query, spotifyLib.SearchTypeTrack, spotifyLib.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	if results.Tracks == nil {
		return nil, nil
	}

	tracks := make([]models.Track, 0, len(results.Tracks.Tracks))
	for _, track := range results.Tracks.Tracks {
		tracks = append(tracks, decodeTrack(track))
	}
	return tracks, nil
}

func (c *Client) SearchArtists(ctx context.Context, query string, limit int) ([]models.Artist, error) {
	sess, err := c.broker.Session(ctx, "")
	if err != nil {
		return nil, err
	}

	results, err := sess.Search(ctx, query, spotifyLib.SearchTypeArtist, spotifyLib.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	if results.Artists == nil {
		return nil, nil
	}

	artists := make([]models.Artist, 0, len(results.Artists.Artists))
	for _, artist := range results.Artists.Artists {
		artists = append(artists, decodeArtist(artist))
	}
	return artists, nil
}

func decodeTrack(track spotifyLib.FullTrack) models.Track {
	var artist string
	switch {
	case len(track.Artists) > 0:
		artist = track.Artists[0].Name
	case len(track.Album.Artists) > 0:
		artist = track.Album.Artists[0].Name
	}

	return models.Track{
		Name:       track.Name,
		Artist:     artist,
		DurationMS: int(track.Duration),
		URI:        string(track.URI),
	}
}

func decodeArtist(artist spotifyLib.FullArtist) models.Artist {
	return models.Artist{
		Name:   artist.Name,
		Genres: artist.Genres,
	}
}

func timerange(timeRange string) spotifyLib.Range {
	switch timeRange {
	case "short_term":
		return spotifyLib.ShortTermRange
	case "long_term":
		return spotifyLib.LongTermRange
	default:
		return spotifyLib.MediumTermRange
	}
}
