package library

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	internalSpotify "github.com/hnormak/spotify-cli/internal/infra/repository/spotify"
)

const (
	DefaultTimeRange   = "medium_term"
	DefaultLimit       = 20
	DefaultSearchLimit = 10
	MaxLimit           = 50
)

var (
	ErrInvalidTimeRange = fmt.Errorf("invalid time range")
	ErrInvalidLimit     = fmt.Errorf("invalid limit")
	ErrSpotifyClient    = fmt.Errorf("spotify client error")
)

type LibraryService struct {
	log    *logrus.Entry
	client MusicClient
}

func New(client MusicClient) LibraryService {
	return LibraryService{
		log:    logrus.WithField("component", "library"),
		client: client,
	}
}

// wrapClientErr keeps authentication failures recognizable at the command
// boundary and folds everything else into the remote-API bucket.
func wrapClientErr(err error) error {
	if errors.Is(err, internalSpotify.ErrAuthentication) {
		return err
	}
	return fmt.Errorf("%w: %s", ErrSpotifyClient, err.Error())
}
