package library

import (
	"context"

	"github.com/hnormak/spotify-cli/internal/models"
)

// TopTracksResult carries everything the top-tracks command renders.
type TopTracksResult struct {
	DisplayName string
	TimeRange   string
	Tracks      []models.Track
}

type TopArtistsResult struct {
	DisplayName string
	TimeRange   string
	Artists     []models.Artist
}

func (s LibraryService) TopTracks(ctx context.Context, timeRange string, limit int) (TopTracksResult, error) {
	if err := Validate(timeRange, limit); err != nil {
		return TopTracksResult{}, err
	}
	if timeRange == "" {
		timeRange = DefaultTimeRange
	}

	tracks, err := s.client.TopTracks(ctx, timeRange, limit)
	if err != nil {
		return TopTracksResult{}, wrapClientErr(err)
	}
	s.log.WithField("count", len(tracks)).Debug("Top tracks fetched")

	displayName, err := s.client.DisplayName(ctx)
	if err != nil {
		return TopTracksResult{}, wrapClientErr(err)
	}

	return TopTracksResult{
		DisplayName: displayName,
		TimeRange:   timeRange,
		Tracks:      tracks,
	}, nil
}

func (s LibraryService) TopArtists(ctx context.Context, timeRange string, limit int) (TopArtistsResult, error) {
	if err := Validate(timeRange, limit); err != nil {
		return TopArtistsResult{}, err
	}
	if timeRange == "" {
		timeRange = DefaultTimeRange
	}

	artists, err := s.client.TopArtists(ctx, timeRange, limit)
	if err != nil {
		return TopArtistsResult{}, wrapClientErr(err)
	}
	s.log.WithField("count", len(artists)).Debug("Top artists fetched")

	displayName, err := s.client.DisplayName(ctx)
	if err != nil {
		return TopArtistsResult{}, wrapClientErr(err)
	}

	return TopArtistsResult{
		DisplayName: displayName,
		TimeRange:   timeRange,
		Artists:     artists,
	}, nil
}
