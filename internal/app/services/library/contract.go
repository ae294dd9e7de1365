package library

import (
	"context"

	"github.com/hnormak/spotify-cli/internal/models"
)

type MusicClient interface {
	DisplayName(ctx context.Context) (string, error)
	TopTracks(ctx context.Context, timeRange string, limit int) ([]models.Track, error)
	TopArtists(ctx context.Context, timeRange string, limit int) ([]models.Artist, error)
	SearchTracks(ctx context.Context, query string, limit int) ([]models.Track, error)
	SearchArtists(ctx context.Context, query string, limit int) ([]models.Artist, error)
}
