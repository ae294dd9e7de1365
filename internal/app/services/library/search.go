package library

import (
	"context"

	"github.com/hnormak/spotify-cli/internal/models"
)

func (s LibraryService) SearchTracks(ctx context.Context, query string, limit int) ([]models.Track, error) {
	if err := Validate("", limit); err != nil {
		return nil, err
	}

	tracks, err := s.client.SearchTracks(ctx, query, limit)
	if err != nil {
		return nil, wrapClientErr(err)
	}
	s.log.WithField("count", len(tracks)).Debug("Track search done")
	return tracks, nil
}

func (s LibraryService) SearchArtists(ctx context.Context, query string, limit int) ([]models.Artist, error) {
	if err := Validate("", limit); err != nil {
		return nil, err
	}

	artists, err := s.client.SearchArtists(ctx, query, limit)
	if err != nil {
		return nil, wrapClientErr(err)
	}
	s.log.WithField("count", len(artists)).Debug("Artist search done")
	return artists, nil
}
